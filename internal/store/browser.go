package store

import (
	"fmt"

	"github.com/maxence-charriere/go-app/v10/pkg/app"
	"k8s.io/klog/v2"
)

// Browser is a Store backed by window.localStorage. Outside a browser
// every operation fails with ErrUnavailable.
type Browser struct{}

func (Browser) storage() (app.Value, error) {
	if app.IsServer {
		return nil, ErrUnavailable
	}
	ls := app.Window().Get("localStorage")
	if ls == nil || !ls.Truthy() {
		return nil, ErrUnavailable
	}
	return ls, nil
}

func (b Browser) Get(key string) ([]byte, error) {
	ls, err := b.storage()
	if err != nil {
		return nil, err
	}
	v := ls.Call("getItem", key)
	if v.IsNull() || v.IsUndefined() {
		return nil, ErrNotFound
	}
	return []byte(v.String()), nil
}

func (b Browser) Set(key string, value []byte) (err error) {
	ls, err := b.storage()
	if err != nil {
		return err
	}
	// setItem throws when the quota is exceeded.
	defer func() {
		if r := recover(); r != nil {
			klog.Errorf("Browser.Set: localStorage.setItem(%q) failed: %v", key, r)
			err = fmt.Errorf("set %q: %v", key, r)
		}
	}()
	ls.Call("setItem", key, string(value))
	return nil
}
