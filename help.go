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

func getHelpMessage() string {
	message := fmt.Sprintf(`

 **avlscope %s**

Build, inspect and stress-test AVL trees from the terminal.
Every tree shows each node's key, cached height and balance factor.

Built with Go %s

# 1. Commands
* **demo**: insert 10 20 30 40 50 25, then delete 50 40 10, printing every step
* **build**: build a tree from --keys and/or --file, then apply --delete
* **shell**: interactive prompt (insert, delete, contains, list, print, verify, ...)
* **ui**: full-screen visualizer
* **stress**: random insert/delete workload with invariant checks
* **settings**: show or create the configuration file

# 2. Key kinds
* int (default)
* float (NaN is rejected)
* string

# 3. Invariants checked
* keys in strictly ascending in-order sequence
* |height(left) - height(right)| <= 1 at every node
* cached heights match the subtree shape

# License
Licensed under the Apache License, Version 2.0
Copyright © 2025 Naren Yellavula

`, version, runtime.Version())
	result := markdown.Render(string(message), 80, 3)
	return string(result)
}
