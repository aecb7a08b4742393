package menu

// PasswordUsage says what a collected password will be used for.
type PasswordUsage int

const (
	UsageSudo PasswordUsage = iota
	UsageCryptsetup
)

// PasswordHolder keeps at most one sudo password and one device passphrase.
// Each is read at most once: taking a password clears its slot.
// Passwords are never logged.
type PasswordHolder struct {
	sudo       string
	hasSudo    bool
	cryptsetup string
	hasCrypt   bool
}

func (p *PasswordHolder) Set(usage PasswordUsage, password string) {
	switch usage {
	case UsageSudo:
		p.sudo = password
		p.hasSudo = true
	case UsageCryptsetup:
		p.cryptsetup = password
		p.hasCrypt = true
	}
}

func (p *PasswordHolder) Has(usage PasswordUsage) bool {
	if usage == UsageSudo {
		return p.hasSudo
	}
	return p.hasCrypt
}

// Take returns the stored password and clears the slot.
func (p *PasswordHolder) Take(usage PasswordUsage) (string, bool) {
	switch usage {
	case UsageSudo:
		if !p.hasSudo {
			return "", false
		}
		pw := p.sudo
		p.sudo = ""
		p.hasSudo = false
		return pw, true
	default:
		if !p.hasCrypt {
			return "", false
		}
		pw := p.cryptsetup
		p.cryptsetup = ""
		p.hasCrypt = false
		return pw, true
	}
}

// Reset drops every stored password. Call it as soon as possible.
func (p *PasswordHolder) Reset() {
	p.sudo = ""
	p.hasSudo = false
	p.cryptsetup = ""
	p.hasCrypt = false
}
