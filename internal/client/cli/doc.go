// Package cli implements the interactive notes client.
//
// The App type wires configuration, the GraphQL client and terminal input,
// and runs a line-oriented REPL. Before login the REPL accepts register,
// login, help and exit. After login it additionally accepts list, show, add,
// edit, delete and logout. Commands that take a note id accept it as an
// argument ("show 3") or prompt for it.
package cli
