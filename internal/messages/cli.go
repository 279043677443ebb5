package messages

// CLI messages for user-facing commands and prompts.
const (
	// RootUse is the CLI command name.
	RootUse = "contemplate"
	// RootShort is the short description for the root command.
	RootShort = "Scaffold new projects from registered templates"
	RootLong  = "contemplate fetches a registered template repository and materializes it\nas a new project directory in the current working directory."

	VersionTemplate = "{{.Version}}\n"
	VersionFullFmt  = "%s (commit %s, built %s)"

	// NewUse is the new command usage line.
	NewUse   = "new [template] [name]"
	NewShort = "Create a project from a template"
	NewLong  = "Fetch the repository behind a template identifier and copy it into the\ncurrent directory under the given name. With no arguments, an interactive\npicker runs when attached to a terminal."

	NewArgsRequired      = "new requires a template identifier and a destination name (or no arguments for the interactive picker)"
	NewRequiresTerminal  = "the interactive picker requires a terminal; pass a template identifier and destination name instead"
	NewDoneFmt           = "created %s\n"
	NewRegistryLoadError = "load template registry: %w"

	// PipelineFetchFmt announces the clone source and staging path.
	PipelineFetchFmt = "%s -> %s\n"
	// PipelineMaterializeFmt announces the staging path and destination name.
	PipelineMaterializeFmt = "%s -> %s\n"

	// ListUse is the list command name.
	ListUse   = "list"
	ListShort = "List registered templates"

	ListHeaderName   = "TEMPLATE"
	ListHeaderURL    = "URL"
	ListHeaderBranch = "BRANCH"
	ListHeaderSubdir = "SUBDIR"

	// WizardSelectTitle asks which template to scaffold from.
	WizardSelectTitle = "Which template?"
	// WizardInputTitle asks for the destination directory name.
	WizardInputTitle       = "Project name"
	WizardNameRequired     = "project name must not be empty"
	WizardNameNoSeparator  = "project name must be a plain directory name"
	WizardRequiresTerminal = "interactive prompts require a terminal"
)
