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
	"bufio"
	"fmt"
	"io"
)

// RunShell reads commands from in until EOF or quit. Command errors are
// reported on out and do not stop the loop.
func RunShell(sh *Shell, in io.Reader, out io.Writer, interactive bool) error {
	scanner := bufio.NewScanner(in)
	buf := make([]byte, 0, 64*1024)
	scanner.Buffer(buf, 1024*1024)

	if interactive {
		fmt.Fprintf(out, "%savlscope shell%s (%s keys). Type 'help' for commands.\n", Info, Reset, sh.session.Kind())
	}
	for {
		if interactive {
			fmt.Fprint(out, "avl> ")
		}
		if !scanner.Scan() {
			break
		}
		quit, err := sh.Exec(scanner.Text(), out)
		if err != nil {
			fmt.Fprintf(out, "%serror:%s %v\n", Error, Reset, err)
			continue
		}
		if quit {
			return nil
		}
	}
	if interactive {
		fmt.Fprintln(out)
	}
	return scanner.Err()
}
