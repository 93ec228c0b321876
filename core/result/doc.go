// Package result provides a two-way tagged union representing a computation
// that either succeeded with a value or failed with an error value.
//
// Result is the lightweight counterpart to the outcome package: it carries no
// trace metadata and does not distinguish domain failures from system
// failures. Use it at boundaries where a simple success/failure judgment is
// enough (argument parsing, handler returns); use outcome.Outcome where the
// two-tier failure taxonomy and tracing matter.
//
// Basic usage:
//
//	func findUser(id string) result.Result[User, error] {
//	    user, err := repo.Find(id)
//	    if err != nil {
//	        return result.Failure[User, error](err)
//	    }
//	    return result.Success[User, error](user)
//	}
//
//	res := findUser("123")
//	name := result.Match(res,
//	    func(u User) string { return u.Name },
//	    func(err error) string { return "unknown" },
//	)
//
// Results are immutable: constructors are the only way to produce one, and
// no method mutates the receiver.
package result
