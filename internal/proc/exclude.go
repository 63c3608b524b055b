package proc

import "strings"

// excludedNames lists desktop and session infrastructure that must never
// show up as a killable entry. Matching is on the executable basename.
var excludedNames = map[string]struct{}{
	// Desktop environment
	"xfce4-panel": {}, "xfce4-session": {}, "xfce4-notifyd": {}, "xfwm4": {}, "xfdesktop": {},
	"Thunar": {}, "thunar": {}, "xfconfd": {}, "xfsettingsd": {}, "xfce4-power-manager": {},
	// System services
	"dbus-daemon": {}, "dbus-broker": {}, "at-spi-bus-launcher": {}, "at-spi2-registryd": {},
	"gvfsd": {}, "gvfsd-fuse": {}, "gvfsd-metadata": {}, "gvfsd-trash": {},
	"ibus-daemon": {}, "ibus-extension-gtk3": {}, "ibus-portal": {},
	"polkitd": {}, "polkit-agent-helper-1": {}, "polkit-gnome-authentication-agent-1": {},
	"ssh-agent": {}, "gpg-agent": {}, "gnome-keyring-daemon": {}, "agent": {},
	"pulseaudio": {}, "pipewire": {}, "pipewire-pulse": {}, "wireplumber": {},
	"xdg-desktop-portal": {}, "xdg-document-portal": {}, "xdg-permission-store": {},
	"localsearch-extractor-3": {}, "localsearch-3": {},
	"copyq": {}, "Xorg": {}, "xrdp": {}, "xrdp-sesman": {}, "xrdp-chansrv": {},
	"systemd": {}, "init": {}, "login": {}, "bash": {}, "zsh": {}, "sh": {}, "fish": {},
	"wrapper-2.0": {}, "panel-wrapper": {}, "tumblerd": {},
	// Sandboxing / container internals
	"bwrap": {}, "slirp4netns": {}, "conmon": {}, "catatonit": {}, "aardvark-dns": {}, "netavark": {},
	// Notifications / helpers
	"abrt-applet": {}, "inotifywait": {}, "gjs": {}, "gcr-prompter": {},
	// More system services
	"dbus-broker-launch": {}, "dbus-launch": {}, "dconf-service": {},
	"fusermount3": {}, "fusermount": {},
	"ibus-dconf": {}, "ibus-engine-simple": {}, "ibus-ui-gtk3": {},
	"glycin-image-rs": {}, "glycin-svg": {}, "glycin-heif": {},
	"imsettings-daemon": {}, "nm-applet": {}, "xfce-polkit": {}, "xfce4-screensaver": {},
	"rootlessport": {}, "rootlessport-child": {}, "pasta": {},
	"fortitray": {}, "fortitraylauncher": {},
	"Xvfb": {}, "wsdd": {}, "dnfdragora-updater": {},
}

// excludedPrefixes catch whole families of helper daemons plus the
// parenthesized placeholders kernel threads leave in cmdline.
var excludedPrefixes = []string{"gvfs", "xdg-", "at-spi", "ibus-", "glycin-", "("}

// excluded reports whether the executable name belongs to the session
// infrastructure that is filtered out of every snapshot.
func excluded(name string) bool {
	if _, ok := excludedNames[name]; ok {
		return true
	}
	for _, prefix := range excludedPrefixes {
		if strings.HasPrefix(name, prefix) {
			return true
		}
	}
	return false
}
