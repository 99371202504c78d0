package connectors

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"net/http"
	"strings"

	"limeal.fr/vlauncher/pkg/utils"
)

const HTTP_SCHEME = "http"
const HTTPS_SCHEME = "https"

type HttpConnector struct {
	URL string

	Secured bool // https or http
}

func (c *HttpConnector) getURL(remotePath string) string {
	// Absolute URLs (metadata-embedded artifact locations) pass through.
	if strings.HasPrefix(remotePath, HTTP_SCHEME+"://") || strings.HasPrefix(remotePath, HTTPS_SCHEME+"://") {
		return remotePath
	}

	if strings.HasPrefix(remotePath, "/") {
		if strings.HasSuffix(c.URL, "/") {
			return c.URL + strings.TrimPrefix(remotePath, "/")
		}
		return c.URL + remotePath
	}

	return c.URL + "/" + remotePath
}

func (c *HttpConnector) NewFromURI(uri string) Connector {
	return &HttpConnector{
		URL:     uri,
		Secured: strings.HasPrefix(uri, HTTPS_SCHEME),
	}
}

func (c *HttpConnector) GetURI() string {
	return c.URL
}

func (c *HttpConnector) GetScheme() string {
	return HTTP_SCHEME
}

func (c *HttpConnector) Connect() error {
	return nil
}

func (c *HttpConnector) IsConnected() bool {
	return true
}

func (c *HttpConnector) Close() error {
	return nil
}

func (c *HttpConnector) ReadFile(remotePath string, dest any) error {
	bytes, err := c.ReadFileBytes(remotePath)
	if err != nil {
		return err
	}
	return json.Unmarshal(bytes, dest)
}

func (c *HttpConnector) ReadFileBytes(remotePath string) ([]byte, error) {
	return utils.DoRequest[[]byte](http.MethodGet, c.getURL(remotePath), nil)
}

func (c *HttpConnector) SendFile(remotePath string, localPath string) error {
	return fmt.Errorf("http connector does not support SendFile")
}

func (c *HttpConnector) SendFileFromBytes(remotePath string, data []byte, perm ...fs.FileMode) error {
	return fmt.Errorf("http connector does not support SendFileFromBytes")
}

func (c *HttpConnector) HasFile(remotePath string) bool {
	_, err := utils.DoRequest[[]byte](http.MethodHead, c.getURL(remotePath), nil)
	return err == nil
}

func (c *HttpConnector) HasFileWithChecksum(remotePath string, checksumType ChecksumType, checksum string) bool {
	bytes, err := c.ReadFileBytes(remotePath)
	if err != nil {
		return false
	}

	switch checksumType {
	case ChecksumTypeSHA1:
		return utils.BytesSHA1(bytes) == checksum
	case ChecksumTypeSHA256:
		return utils.BytesSHA256(bytes) == checksum
	}
	return true
}
