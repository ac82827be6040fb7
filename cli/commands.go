package cli

var (
	Version   = ""
	CommitSHA = ""
)

// Globals defines global flags available to all commands.
type Globals struct {
	Telemetry bool `help:"Show timing telemetry for operations."`
}

type Commands struct {
	Globals

	Check  CheckCmd  `cmd:"" help:"Scan a Lox source file and report lexical errors."`
	Tokens TokensCmd `cmd:"" help:"Show the token stream of a Lox source file."`
	Web    WebCmd    `cmd:"" help:"Start the scanner playground web server."`
}
