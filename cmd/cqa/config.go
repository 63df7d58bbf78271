// SPDX-FileCopyrightText: 2024-2025 Rafael V. Volkmer <rafael.v.volkmer@gmail.com>
// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

const (
	// envPrefix defines the prefix used for environment variables that
	// configure the CLI. For example:
	//
	//   CQA_PATH=/some/project
	//   CQA_WORKERS=8
	//   CQA_LOG_LEVEL=debug
	envPrefix = "CQA"

	// configName is looked up in the analyzed root as .cqa.yaml, .cqa.toml,
	// .cqa.json or any other extension viper supports.
	configName = ".cqa"

	defaultExtensions = ".java,.c,.h,.cpp,.hpp,.cc,.cs,.js,.ts,.kt,.scala,.go"
)

func newConfig() *viper.Viper {
	config := viper.New()
	config.SetEnvPrefix(envPrefix)
	config.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	config.AutomaticEnv()
	return config
}

// loadProjectConfig merges the optional project config file found in root.
// Flags and environment variables still win over its values.
func loadProjectConfig(config *viper.Viper, root string) (string, error) {
	config.SetConfigName(configName)
	config.AddConfigPath(root)

	if err := config.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return "", nil
		}
		return "", fmt.Errorf("read config file: %w", err)
	}
	return config.ConfigFileUsed(), nil
}
