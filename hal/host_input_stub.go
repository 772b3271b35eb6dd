//go:build !cgo

package hal

func (in *hostInput) poll() {}
