package main

import "flag"

type AppFlags struct {
	ConfigFile string
}

func ParseFlags() AppFlags {
	configFile := flag.String("config", "", "Path to the YAML/JSON configuration file. If not set, searches default locations.")
	configFileAlias := flag.String("c", "", "Alias for -config")

	flag.Parse()

	flags := AppFlags{}

	if *configFile != "" {
		flags.ConfigFile = *configFile
	} else if *configFileAlias != "" {
		flags.ConfigFile = *configFileAlias
	}

	return flags
}
