package constants

import "time"

// ToastDuration controls how long a status message stays at the bottom of the screen. It is independent of
// how long a block shows as copied
var ToastDuration = 3 * time.Second

// MaxPreviewLines controls how many lines of each block are shown in the list
const MaxPreviewLines = 6

// CopiedBadge is appended to a block's title while it shows as copied
const CopiedBadge = "[copied]"
