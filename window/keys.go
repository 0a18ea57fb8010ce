package window

import "github.com/go-gl/glfw/v3.3/glfw"

// glfwKeyNames maps glfw key codes to the short name strings Pressed.Down
// is keyed by, the same fixed-string convention gazed-vu/device's keyNames
// table uses so callers can match on e.g. "Esc" instead of a backend key
// constant.
var glfwKeyNames = map[glfw.Key]string{
	glfw.Key0: "0", glfw.Key1: "1", glfw.Key2: "2", glfw.Key3: "3", glfw.Key4: "4",
	glfw.Key5: "5", glfw.Key6: "6", glfw.Key7: "7", glfw.Key8: "8", glfw.Key9: "9",

	glfw.KeyA: "A", glfw.KeyB: "B", glfw.KeyC: "C", glfw.KeyD: "D", glfw.KeyE: "E",
	glfw.KeyF: "F", glfw.KeyG: "G", glfw.KeyH: "H", glfw.KeyI: "I", glfw.KeyJ: "J",
	glfw.KeyK: "K", glfw.KeyL: "L", glfw.KeyM: "M", glfw.KeyN: "N", glfw.KeyO: "O",
	glfw.KeyP: "P", glfw.KeyQ: "Q", glfw.KeyR: "R", glfw.KeyS: "S", glfw.KeyT: "T",
	glfw.KeyU: "U", glfw.KeyV: "V", glfw.KeyW: "W", glfw.KeyX: "X", glfw.KeyY: "Y",
	glfw.KeyZ: "Z",

	glfw.KeyF1: "F1", glfw.KeyF2: "F2", glfw.KeyF3: "F3", glfw.KeyF4: "F4",
	glfw.KeyF5: "F5", glfw.KeyF6: "F6", glfw.KeyF7: "F7", glfw.KeyF8: "F8",
	glfw.KeyF9: "F9", glfw.KeyF10: "F10", glfw.KeyF11: "F11", glfw.KeyF12: "F12",

	glfw.KeyLeft: "La", glfw.KeyRight: "Ra", glfw.KeyUp: "Ua", glfw.KeyDown: "Da",

	glfw.KeyEqual: "=", glfw.KeyMinus: "-",
	glfw.KeyRightBracket: "]", glfw.KeyLeftBracket: "[",
	glfw.KeyApostrophe: "Qt", glfw.KeySemicolon: ";", glfw.KeyBackslash: "Bs",
	glfw.KeyComma: ",", glfw.KeySlash: "Sl", glfw.KeyPeriod: ".",
	glfw.KeyGraveAccent: "~",

	glfw.KeyEnter: "Ret", glfw.KeyTab: "Tab", glfw.KeySpace: "Sp",
	glfw.KeyDelete: "Del", glfw.KeyBackspace: "BSp", glfw.KeyEscape: "Esc",
	glfw.KeyHome: "Home", glfw.KeyPageUp: "Pup", glfw.KeyEnd: "End",
	glfw.KeyPageDown: "Pdn",

	glfw.KeyLeftShift: "Sh", glfw.KeyRightShift: "Sh",
	glfw.KeyLeftControl: "Ctl", glfw.KeyRightControl: "Ctl",
	glfw.KeyLeftAlt: "Alt", glfw.KeyRightAlt: "Alt",
	glfw.KeyLeftSuper: "Cmd", glfw.KeyRightSuper: "Cmd",

	glfw.KeyKP0: "KP0", glfw.KeyKP1: "KP1", glfw.KeyKP2: "KP2", glfw.KeyKP3: "KP3",
	glfw.KeyKP4: "KP4", glfw.KeyKP5: "KP5", glfw.KeyKP6: "KP6", glfw.KeyKP7: "KP7",
	glfw.KeyKP8: "KP8", glfw.KeyKP9: "KP9",
	glfw.KeyKPDecimal: "KP.", glfw.KeyKPMultiply: "KP*", glfw.KeyKPAdd: "KP+",
	glfw.KeyKPDivide: "KP/", glfw.KeyKPEnter: "KPEnt", glfw.KeyKPSubtract: "KP-",
	glfw.KeyKPEqual: "KP=",
}

var glfwButtonNames = map[glfw.MouseButton]string{
	glfw.MouseButtonLeft:   "Lm",
	glfw.MouseButtonRight:  "Rm",
	glfw.MouseButtonMiddle: "Mm",
}
