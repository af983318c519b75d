/*
Copyright © 2024 Ryan Painter paintersrp@gmail.com

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"os"

	"github.com/Paintersrp/stark/internal/constants"
	"github.com/Paintersrp/stark/internal/logging"
	"github.com/Paintersrp/stark/internal/state"
	"github.com/Paintersrp/stark/pkg/cmd/root"
)

func Execute() {
	console := logging.Console(os.Stderr, "info")

	s, err := state.NewState(os.Getenv(constants.EnvPrefix + "_WORKSPACE"))
	if err != nil {
		console.Error().Err(err).Msg("failed to load workspace")
		os.Exit(1)
	}

	rootCmd, err := root.NewCmdRoot(s)
	if err != nil {
		s.Close()
		console.Error().Err(err).Msg("failed to build commands")
		os.Exit(1)
	}

	execErr := rootCmd.Execute()
	if err := s.Close(); err != nil {
		console.Warn().Err(err).Msg("failed to close state")
	}
	if execErr != nil {
		os.Exit(1)
	}
}
