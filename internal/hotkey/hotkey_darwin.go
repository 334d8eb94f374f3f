//go:build darwin

package hotkey

import (
	"context"
	"fmt"

	"github.com/hashicorp/go-hclog"
	"golang.design/x/hotkey"
)

var darwinMods = map[Modifier]hotkey.Modifier{
	ModCtrl:   hotkey.ModCtrl,
	ModOption: hotkey.ModOption,
	ModShift:  hotkey.ModShift,
	ModCmd:    hotkey.ModCmd,
}

var darwinKeys = map[string]hotkey.Key{
	"a": hotkey.KeyA, "b": hotkey.KeyB, "c": hotkey.KeyC, "d": hotkey.KeyD,
	"e": hotkey.KeyE, "f": hotkey.KeyF, "g": hotkey.KeyG, "h": hotkey.KeyH,
	"i": hotkey.KeyI, "j": hotkey.KeyJ, "k": hotkey.KeyK, "l": hotkey.KeyL,
	"m": hotkey.KeyM, "n": hotkey.KeyN, "o": hotkey.KeyO, "p": hotkey.KeyP,
	"q": hotkey.KeyQ, "r": hotkey.KeyR, "s": hotkey.KeyS, "t": hotkey.KeyT,
	"u": hotkey.KeyU, "v": hotkey.KeyV, "w": hotkey.KeyW, "x": hotkey.KeyX,
	"y": hotkey.KeyY, "z": hotkey.KeyZ,

	"0": hotkey.Key0, "1": hotkey.Key1, "2": hotkey.Key2, "3": hotkey.Key3,
	"4": hotkey.Key4, "5": hotkey.Key5, "6": hotkey.Key6, "7": hotkey.Key7,
	"8": hotkey.Key8, "9": hotkey.Key9,

	"f1": hotkey.KeyF1, "f2": hotkey.KeyF2, "f3": hotkey.KeyF3, "f4": hotkey.KeyF4,
	"f5": hotkey.KeyF5, "f6": hotkey.KeyF6, "f7": hotkey.KeyF7, "f8": hotkey.KeyF8,
	"f9": hotkey.KeyF9, "f10": hotkey.KeyF10, "f11": hotkey.KeyF11, "f12": hotkey.KeyF12,

	"space":  hotkey.KeySpace,
	"tab":    hotkey.KeyTab,
	"return": hotkey.KeyReturn,
	"escape": hotkey.KeyEscape,
	"delete": hotkey.KeyDelete,
	"left":   hotkey.KeyLeft,
	"right":  hotkey.KeyRight,
	"up":     hotkey.KeyUp,
	"down":   hotkey.KeyDown,
}

func native(acc Accelerator) ([]hotkey.Modifier, hotkey.Key, error) {
	key, ok := darwinKeys[acc.Key]
	if !ok {
		return nil, 0, fmt.Errorf("no key code for %q", acc.Key)
	}
	var mods []hotkey.Modifier
	for _, m := range acc.Modifiers() {
		mods = append(mods, darwinMods[m])
	}
	return mods, key, nil
}

// Listen registers acc as a global hotkey and calls fn for each key-down
// until ctx is done. The main run loop must be running (the menu bar
// provides it).
func Listen(ctx context.Context, acc Accelerator, logger hclog.Logger, fn Handler) error {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	logger = logger.Named("hotkey")

	mods, key, err := native(acc)
	if err != nil {
		return err
	}
	hk := hotkey.New(mods, key)
	if err := hk.Register(); err != nil {
		return fmt.Errorf("register hotkey %s: %w", acc, err)
	}
	defer func() {
		if err := hk.Unregister(); err != nil {
			logger.Warn("failed to unregister hotkey", "hotkey", acc.String(), "error", err)
		}
	}()

	logger.Info("hotkey registered", "hotkey", acc.String())
	dispatch(ctx, hk.Keydown(), logger, fn)
	return nil
}
