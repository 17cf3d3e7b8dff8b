// Package luacheck validates generated Lua source by compiling it with an
// embedded Lua implementation. Chunks are only loaded, never run, so the
// game's APIs do not need to exist.
package luacheck

import (
	"fmt"

	lua "github.com/yuin/gopher-lua"
)

// Check compiles code as a Lua chunk and returns any syntax error, with the
// position information the Lua parser reports.
func Check(code string) error {
	L := lua.NewState()
	defer L.Close()

	if _, err := L.LoadString(code); err != nil {
		if apiErr, ok := err.(*lua.ApiError); ok {
			return fmt.Errorf("lua syntax error: %v", apiErr.Object)
		}
		return fmt.Errorf("lua syntax error: %w", err)
	}
	return nil
}
