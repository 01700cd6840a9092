package attr

import "eiplink/logging"

func logTruncated(where string, length, capacity int) {
	logging.DebugLog("attr", "%s: value too long, truncated. length=%d capacity=%d", where, length, capacity)
}
