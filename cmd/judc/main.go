// Copyright 2020-2025 Buf Technologies, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Command judc drives the Judith front end: it tokenizes or parses source
// files and prints the result as JSON.
package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/judithlang/judith"
	"github.com/judithlang/judith/report"
)

func main() {
	if err := rootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func rootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "judc",
		Short:         "Judith compiler front end",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	root.AddCommand(tokenizeCommand())
	root.AddCommand(parseCommand())
	return root
}

func tokenizeCommand() *cobra.Command {
	var showTrivia bool
	cmd := &cobra.Command{
		Use:   "tokenize <file>",
		Short: "Scan a source file and print its token stream as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}

			result := judith.Tokenize(string(src))
			if !showTrivia {
				for i := range result.Tokens {
					result.Tokens[i].LeadingTrivia = nil
					result.Tokens[i].TrailingTrivia = nil
				}
			}

			if err := printJSON(cmd, map[string]any{
				"tokens":   result.Tokens,
				"messages": result.Messages,
			}); err != nil {
				return err
			}
			return renderMessages(cmd, string(src), &result.Messages)
		},
	}
	cmd.Flags().BoolVar(&showTrivia, "trivia", false, "include leading and trailing trivia in the output")
	return cmd
}

func parseCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "parse <file>",
		Short: "Parse a source file and print its syntax tree as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}

			result := judith.ParseSource(args[0], string(src))
			if err := printJSON(cmd, map[string]any{
				"unit":     result.Unit,
				"messages": result.Messages,
			}); err != nil {
				return err
			}
			return renderMessages(cmd, string(src), &result.Messages)
		},
	}
	return cmd
}

func printJSON(cmd *cobra.Command, value any) error {
	out, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(out))
	return nil
}

func renderMessages(cmd *cobra.Command, src string, messages *report.MessageContainer) error {
	if messages.Count() == 0 {
		return nil
	}
	renderer := report.Renderer{Source: src}
	fmt.Fprint(cmd.ErrOrStderr(), renderer.Render(messages))
	if messages.HasErrors() {
		return fmt.Errorf("%d error(s)", len(messages.Errors))
	}
	return nil
}
