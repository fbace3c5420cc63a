//go:build vebcheck

package flatveb

const checksEnabled = true
