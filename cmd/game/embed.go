package main

import "embed"

// configFS holds the default physics config and stages
//
//go:embed configs
var configFS embed.FS
