package command

// Messages for verbs used without their required argument.
const (
	UsageDescription = "description cannot be empty"
	UsageMark        = "usage: `mark <index>`"
	UsageUnmark      = "usage: `unmark <index>`"
	UsageDelete      = "usage: `delete <index>`"
	UsageFind        = "usage: `find <title>`"
	UsageList        = "usage: `list`"
	UsageBye         = "usage: `bye`"
)
