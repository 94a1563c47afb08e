package domain

// Operation names a mutation guarded by the authorization policy.
type Operation string

const (
	OpCreatePost    Operation = "createPost"
	OpDeletePost    Operation = "deletePost"
	OpCreateComment Operation = "createComment"
)

// Policy maps each guarded operation to the roles allowed to perform it.
// Holding any one of the listed roles is sufficient.
type Policy map[Operation]RoleSet

// DefaultPolicy returns the policy table the API ships with.
func DefaultPolicy() Policy {
	return Policy{
		OpCreatePost:    {RoleCreator, RoleAdmin},
		OpDeletePost:    {RoleAdmin},
		OpCreateComment: {RoleCommentator, RoleAdmin},
	}
}
