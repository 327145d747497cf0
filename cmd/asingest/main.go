/*
Copyright © 2025 AlphaSense Labs
SPDX-License-Identifier: Apache-2.0
*/
package main

import "github.com/alphasense-labs/asingest/pkg/cli"

func main() {
	cli.Execute()
}
