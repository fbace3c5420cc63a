//go:build !vebcheck

package flatveb

const checksEnabled = false
