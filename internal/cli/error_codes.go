package cli

import "github.com/zkdiff/zkdiff/internal/errcode"

const (
	codeUsage       = errcode.Usage
	codeIO          = errcode.IO
	codeBadInput    = errcode.BadInput
	codeUnknownCore = errcode.UnknownCore
	codeBuildFailed = errcode.BuildFailed
	codeConfig      = errcode.ConfigFailed
)
