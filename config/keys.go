package config

import "github.com/Porges/vty/input"

// The variant tables below are the only place the decoder learns the
// key and modifier catalogs. The identifiers are the ones config files
// have always used (`KUp`, `KChar 'x'`, `MShift`, ...).

var keyEnum = enum[input.Key]{
	name: "Key",
	variants: map[string]decodeFn[input.Key]{
		"KChar": charPayload(input.Char),
		"KFun":  intPayload(input.Fun),

		"KEsc":       nullary(input.Key{Code: input.KeyEsc}),
		"KBS":        nullary(input.Key{Code: input.KeyBS}),
		"KEnter":     nullary(input.Key{Code: input.KeyEnter}),
		"KLeft":      nullary(input.Key{Code: input.KeyLeft}),
		"KRight":     nullary(input.Key{Code: input.KeyRight}),
		"KUp":        nullary(input.Key{Code: input.KeyUp}),
		"KDown":      nullary(input.Key{Code: input.KeyDown}),
		"KUpLeft":    nullary(input.Key{Code: input.KeyUpLeft}),
		"KUpRight":   nullary(input.Key{Code: input.KeyUpRight}),
		"KDownLeft":  nullary(input.Key{Code: input.KeyDownLeft}),
		"KDownRight": nullary(input.Key{Code: input.KeyDownRight}),
		"KCenter":    nullary(input.Key{Code: input.KeyCenter}),
		"KBackTab":   nullary(input.Key{Code: input.KeyBackTab}),
		"KPrtScr":    nullary(input.Key{Code: input.KeyPrtScr}),
		"KPause":     nullary(input.Key{Code: input.KeyPause}),
		"KIns":       nullary(input.Key{Code: input.KeyIns}),
		"KHome":      nullary(input.Key{Code: input.KeyHome}),
		"KPageUp":    nullary(input.Key{Code: input.KeyPageUp}),
		"KDel":       nullary(input.Key{Code: input.KeyDel}),
		"KEnd":       nullary(input.Key{Code: input.KeyEnd}),
		"KPageDown":  nullary(input.Key{Code: input.KeyPageDown}),
		"KBegin":     nullary(input.Key{Code: input.KeyBegin}),
		"KMenu":      nullary(input.Key{Code: input.KeyMenu}),
	},
}

var modifierEnum = enum[input.Modifier]{
	name: "Modifier",
	variants: map[string]decodeFn[input.Modifier]{
		"MShift": nullary(input.ModShift),
		"MCtrl":  nullary(input.ModCtrl),
		"MMeta":  nullary(input.ModMeta),
		"MAlt":   nullary(input.ModAlt),
	},
}
