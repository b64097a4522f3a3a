// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"fmt"
	"runtime"

	markdown "github.com/MichaelMure/go-term-markdown"
)

const tuiKeysMarkdown = `
| Key | Action |
|-----|--------|
| enter | insert the typed values, or search with ` + "`?N`" + ` |
| ctrl+y | copy the in-order traversal to the clipboard |
| ctrl+r | reset to an empty tree |
| esc / ctrl+c | quit |
`

func getHelpMessage() string {
	message := fmt.Sprintf(`

 **bstree %s**

Build a binary search tree from integers and look at its shape.
After every insert the root is checked once and, when its two subtrees differ in depth by more than one, a single rotation is applied at the root. Nothing deeper in the tree is rebalanced.

Built with Go %s

# 1. Commands
* demo: insert the sample sequence 15 6 18 3 7 17 20 2 4 13 9 and report
* insert: insert values given as arguments and print the in-order traversal
* search: look a value up in a tree built from --values
* render: print the tree as a grid, one column per value
* load: read values from a file
* tui: interactive tree builder
* settings: show or create ~/.bstree.yaml

# 2. Output
The in-order traversal prints one value per line. The root's line ends with the root marker (default "<-").

# 3. TUI keys
%s

# License
Licensed under the Apache License, Version 2.0

`, version, runtime.Version(), tuiKeysMarkdown)
	result := markdown.Render(message, 80, 3)
	return string(result)
}
