//go:build !nochecks

package matrix

// checksEnabled gates the validation helpers. Test and development builds
// keep it on; release builds pass -tags nochecks so the checks fold away.
const checksEnabled = true
