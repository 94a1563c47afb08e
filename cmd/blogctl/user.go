package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/cobra"

	"github.com/inkpress/blog-api/internal/core/domain"
)

// userAddConfig holds the flags of the user add command.
type userAddConfig struct {
	username string
	password string
	roles    []string
}

// NewUserCmd creates the user subcommand group.
func NewUserCmd(deps Deps) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "user",
		Short: "Manage user accounts",
	}
	cmd.AddCommand(newUserAddCmd(deps))
	return cmd
}

func newUserAddCmd(deps Deps) *cobra.Command {
	cfg := &userAddConfig{}

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a user account",
		Long: `Create a user with a bcrypt-hashed password and one or more roles
(admin, creator, commentator). Accounts cannot be created over the API.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runUserAdd(cmd, deps, cfg)
		},
	}

	cmd.Flags().StringVar(&cfg.username, "username", "", "login name (3-32 alphanumeric characters)")
	cmd.Flags().StringVar(&cfg.password, "password", "", "password (8-72 characters)")
	cmd.Flags().StringSliceVar(&cfg.roles, "role", nil, "role to grant; repeat or comma-separate for several")
	_ = cmd.MarkFlagRequired("username")
	_ = cmd.MarkFlagRequired("password")
	_ = cmd.MarkFlagRequired("role")

	return cmd
}

// Same bounds as the login request.
const (
	usernameRules = "required,min=3,max=32,alphanum"
	passwordRules = "required,min=8,max=72"
)

var (
	errBadUsername = errors.New("invalid username: must be 3-32 alphanumeric characters")
	errBadPassword = errors.New("invalid password: must be 8-72 characters")
)

func runUserAdd(cmd *cobra.Command, deps Deps, cfg *userAddConfig) error {
	v := validator.New()
	if v.Var(cfg.username, usernameRules) != nil {
		return errBadUsername
	}
	if v.Var(cfg.password, passwordRules) != nil {
		return errBadPassword
	}

	roles := make(domain.RoleSet, 0, len(cfg.roles))
	for _, r := range cfg.roles {
		roles = append(roles, domain.Role(strings.ToLower(strings.TrimSpace(r))))
	}

	ctx := cmd.Context()
	appCfg, err := deps.ConfigLoader(ctx)
	if err != nil {
		return err
	}

	accounts, closeFn, err := deps.AccountServiceFactory(ctx, appCfg)
	if err != nil {
		return err
	}
	defer closeFn()

	user, err := accounts.CreateUser(ctx, cfg.username, cfg.password, roles)
	if err != nil {
		return fmt.Errorf("create user: %w", err)
	}

	cmd.Printf("created user %s (%s) with roles %v\n", user.Username, user.ID, user.Roles)
	return nil
}
