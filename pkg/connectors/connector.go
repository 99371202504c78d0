package connectors

import (
	"io/fs"
	"strings"
)

type ChecksumType int

const (
	ChecksumTypeSHA1 ChecksumType = iota + 1
	ChecksumTypeSHA256
)

// Connector abstracts the byte source/sink behind a distribution URI.
// The launcher core reads artifacts through one (http/https by default, a
// file tree or sftp server when a mirror is configured) and the publish
// command writes a provisioned install root through one.
type Connector interface {
	NewFromURI(uri string) Connector

	GetURI() string
	GetScheme() string

	Connect() error
	IsConnected() bool
	Close() error

	// ReadFile reads the remote path and unmarshals its JSON body into dest.
	ReadFile(remotePath string, dest any) error
	ReadFileBytes(remotePath string) ([]byte, error)

	SendFile(remotePath string, localPath string) error
	SendFileFromBytes(remotePath string, data []byte, perm ...fs.FileMode) error

	HasFile(remotePath string) bool
	HasFileWithChecksum(remotePath string, checksumType ChecksumType, checksum string) bool
}

var CONNECTORS = map[string]Connector{
	"sftp":  new(SFTPConnector),
	"file":  new(FileConnector),
	"http":  new(HttpConnector),
	"https": new(HttpConnector),
}

func FindConnectorFromURI(uri string) Connector {
	for k, connector := range CONNECTORS {
		if strings.HasPrefix(uri, k+"://") {
			return connector.NewFromURI(uri)
		}
	}

	return nil
}
