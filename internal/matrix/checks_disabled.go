//go:build nochecks

package matrix

const checksEnabled = false
