package benv

// Message constants
const (
	// Command descriptions
	MsgRootShort = "Profile-based environment variables for toolchains"
	MsgRootLong  = `benv manages named profiles of toolchain environment variables (PATH,
CFLAGS, CC and friends) in a local database and turns the active profile
into shell export statements.

Run benv with no arguments to open the interactive editor. Use 'benv
export <profile>' inside eval to load a profile into the current shell:

  eval "$(benv export work)"`

	MsgExportShort     = "Print export statements for a profile"
	MsgExportLong      = `Export prints the shell export statements for the named profile, one per
line, and nothing else, so the output is safe to eval.

With no profile argument every stored profile is printed, each preceded
by a '# profile: <name>' comment line.`
	MsgListShort       = "List stored profiles"
	MsgListLong        = "List shows every stored profile with its entry count and the variables it touches."
	MsgShowShort       = "Show a profile's aggregated values and export statements"
	MsgShowLong        = `Show prints what a profile amounts to: each variable with its joined
value, followed by the export statements that would be emitted.`
	MsgDumpShort       = "Write the whole store as YAML"
	MsgDumpLong        = `Dump writes every profile, custom variable definition, and catalog item
as a YAML document, to stdout or to a file with --output. The dump can be
loaded back with 'benv restore'.`
	MsgRestoreShort    = "Load a YAML dump into the store"
	MsgRestoreLong     = `Restore loads a dump produced by 'benv dump'. Profiles and custom
variable definitions overwrite stored records with the same name; the
item catalog is replaced to match the dump.`
	MsgDocsShort       = "Read long-form documentation topics"
	MsgVersionShort    = "Print version information"
	MsgVersionLong     = "Print detailed version information including commit hash and build date"
	MsgCompletionShort = "Generate shell completion script"

	// Examples
	MsgExportExample = `  # Load the work profile into the current shell
  eval "$(benv export work)"

  # Replace instead of prepending to existing values
  benv export work --mode replace

  # Every profile, separated by comment lines
  benv export`
	MsgListExample = `  # List all profiles
  benv list`
	MsgShowExample = `  # Inspect the work profile
  benv show work

  # With append semantics
  benv show work --mode append`
	MsgDumpExample = `  # Print the store as YAML
  benv dump

  # Write a backup file
  benv dump --output benv-backup.yaml`
	MsgRestoreExample = `  # Load a backup
  benv restore benv-backup.yaml`
	MsgDocsExample = `  # List available topics
  benv docs

  # Read about export quoting
  benv docs quoting`

	// Status messages
	MsgNoProfiles        = "No profiles stored."
	MsgRestoredFormat    = "Restored %d profiles, %d custom vars, %d items.\n"
	MsgDumpWrittenFormat = "Wrote store dump to %s\n"
	MsgProfileComment    = "# profile: %s"
	MsgDocsAvailable     = "Available topics:"
	MsgDocsHint          = "\nUse 'benv docs <topic>' to read one.\n"

	// Error messages
	MsgErrUnknownTopic = "unknown topic: %s"

	// Flag descriptions
	MsgFlagVerbose = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagNoColor = "Disable styled output"
	MsgFlagMode    = "Export mode: prepend, append or replace"
	MsgFlagOutput  = "Write to a file instead of stdout"
)
