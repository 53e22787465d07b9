// Package queryir provides an abstract query intermediate representation
// for filtering the mutation audit log kept by internal/store.
//
// QueryIR sits between a caller (the cli query subcommand today) and a
// backend compiler:
//
//	[cli flags] -> [Query IR] -> [querysql backend]
//
// Query and Predicate are sealed interfaces using the marker-method
// pattern, so only types declared here can implement them and a
// backend's type switch over them is exhaustive by construction.
package queryir
