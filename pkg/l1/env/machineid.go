// Package env provides defaults shared by controller and connector
// environments.
package env

import (
	"github.com/denisbrodbeck/machineid"
	"github.com/golang/glog"
	"github.com/google/uuid"
)

// MachineID retrieves an ID identifying the machine, hashed with the
// application name so the raw machine ID is not exposed. A random
// ID is used when the machine ID is unavailable.
func MachineID(app string) string {
	id, err := machineid.ProtectedID(app)
	if err != nil {
		glog.Warningf("machine id unavailable, using random id: %v", err)
		return uuid.New().String()
	}
	return id[:12]
}
