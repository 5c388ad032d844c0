package utils

import (
	"fmt"
	"os"
	"path"
)

// GetChaincodeSourcePath returns the staging directory the gateway packages a
// chaincode from.
func GetChaincodeSourcePath(name, version string) string {
	rootDir, _ := os.Getwd()
	return path.Join(rootDir, "storage", "chaincodes", fmt.Sprintf("%s_%s", name, version))
}
