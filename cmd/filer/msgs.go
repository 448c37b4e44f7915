package filer

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	MsgRootShort    = "Pattern matching file management utility"
	MsgVersionShort = "Print version information"
	MsgManShort     = "Generate man page"

	// Flag descriptions
	MsgFlagVerbose = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagMatch   = "Wildcard pattern filenames are matched against (* and ?)"
	MsgFlagRebuild = "Template used to rebuild the output name for each match"
	MsgFlagCommand = "Command to prefix to each generated line"
	MsgFlagDir     = "Directory in which to match files"
	MsgFlagAll     = "Include files that begin with a period (.)"
	MsgFlagQuote   = "Double-quote filenames in the output (useful for funny characters)"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/root-example.txt
	msgRootExampleRaw string
	MsgRootExample    = strings.TrimSpace(msgRootExampleRaw)

	//go:embed msgs/usage-template.txt
	msgUsageTemplateRaw string
	MsgUsageTemplate    = strings.TrimSpace(msgUsageTemplateRaw)
)
