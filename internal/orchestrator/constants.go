package orchestrator

// GitHub Actions step outputs written with --ci-output.
const (
	OutputTagName     = "tag_name"
	OutputPreviousTag = "previous_tag"
	OutputHTMLURL     = "html_url"
	OutputDryRun      = "dry_run"
)
