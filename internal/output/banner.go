package output

// Banner art shown above the interactive prompts. Themes without their own
// art fall back to the Serenium banner.
var banners = map[ThemeName]string{
	ThemeSerenium: `
    ╦ ╦╔═╗╔╗ ╔╦╗╔═╗╔╦╗╔═╗
    ║║║║╣ ╠╩╗ ║ ║╣  ║ ╚═╗
    ╚╩╝╚═╝╚═╝ ╩ ╚═╝ ╩ ╚═╝
`,
	ThemeCyberpunk: `
    ▄▄▄▄▄▄▄▄▄▄▄▄▄▄▄▄▄▄▄▄▄▄
    █ ▄▄▄▄▄ █▀█ █▄█ █▄▄▄▄▄ █
    █ █   █ █▀▀▀█▀▀ █   █ █
    █ █▄▄▄█ █   █   █▄▄▄█ █
    █▄▄▄▄▄▄▄█▄▄▄█▄▄▄█▄▄▄▄▄█
`,
	ThemeOcean: `
    ˜˜˜˜˜˜˜˜˜˜˜˜˜˜˜˜˜˜˜˜˜˜˜˜˜
    ~   O C E A N   T H E M E   ~
    ˜˜˜˜˜˜˜˜˜˜˜˜˜˜˜˜˜˜˜˜˜˜˜˜˜
`,
	ThemeForest: `
    🌲🌲🌲🌲🌲🌲🌲🌲🌲🌲🌲🌲🌲
    🌲   F O R E S T   🌲
    🌲🌲🌲🌲🌲🌲🌲🌲🌲🌲🌲🌲🌲
`,
	ThemeSunset: `
    🌅🌅🌅🌅🌅🌅🌅🌅🌅🌅🌅🌅🌅
    🌅   S U N S E T   🌅
    🌅🌅🌅🌅🌅🌅🌅🌅🌅🌅🌅🌅🌅
`,
	ThemeMatrix: `
    01001000 01100101 01101100 01101100 01101111
    01001101 01100001 01110100 01110010 01101001
    01011001 00100000 01010100 01101000 01100101
`,
	ThemeNeon: `
    ⚡⚡⚡⚡⚡⚡⚡⚡⚡⚡⚡⚡⚡⚡⚡⚡⚡
    ⚡    N E O N    ⚡
    ⚡⚡⚡⚡⚡⚡⚡⚡⚡⚡⚡⚡⚡⚡⚡⚡⚡
`,
}

// Banner returns the ASCII banner for a theme.
func Banner(name ThemeName) string {
	if art, ok := banners[name]; ok {
		return art
	}
	return banners[ThemeSerenium]
}
