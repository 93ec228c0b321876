// Package registry provides name-to-procedure indirection with symmetric
// aliasing, so multiple command names resolve to one implementation.
//
// Basic usage:
//
//	reg := registry.New()
//	reg.Register("getUser", getUser)
//
//	if err := reg.Alias("getUser", "fetchUser"); err != nil {
//	    return err
//	}
//
//	proc, _ := reg.Get("fetchUser")      // same implementation as "getUser"
//	origin, _ := reg.Resolve("fetchUser") // "getUser"
//
// Aliases are bidirectional set memberships: Resolve works from either
// side of the pair. Resolve returns some other member of the set, not a
// guaranteed canonical primary: with chained aliasing across three or
// more names the answer depends on insertion order.
//
// Alias moves are clean: assigning an alias name that already belongs to a
// different command detaches it from the previous owner completely, and
// aliasing over a registered primary is rejected with ErrNameTaken. Stale
// alias-set entries cannot occur.
//
// The registry stores procedures as opaque values (any): it provides name
// indirection only and does not constrain what a procedure is. Hosts
// typically store *procedure.Procedure values and assert on retrieval.
package registry
