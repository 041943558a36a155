package room

import (
	"president-server/pkg/playable"
)

const logMessageLimit = 25

// addLogMessages keeps the most recent log messages for clients that join late
func (d *Dealer) addLogMessages(messages []*playable.LogMessage) {
	d.logLock.Lock()
	defer d.logLock.Unlock()

	m := append(d.logMessages, messages...)
	count := len(m)
	if count > logMessageLimit {
		m = m[count-logMessageLimit:]
	}

	d.logMessages = m
}

// LogMessages returns the most recent log messages, oldest first
func (d *Dealer) LogMessages() []*playable.LogMessage {
	d.logLock.RLock()
	defer d.logLock.RUnlock()

	return append([]*playable.LogMessage{}, d.logMessages...)
}
