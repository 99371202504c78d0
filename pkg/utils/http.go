package utils

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
)

type RequestOptions[T any] struct {
	Body        io.Reader
	ContentType string
	Headers     map[string]string
	QueryParams map[string]string
	Result      *T
}

func NewRequestOptions[T any](contentType string, result *T) *RequestOptions[T] {
	headers := make(map[string]string)
	headers["Content-Type"] = contentType

	return &RequestOptions[T]{
		ContentType: contentType,
		Headers:     headers,
		Result:      result,
	}
}

func (o *RequestOptions[T]) AddHeader(key string, value string) {
	o.Headers[key] = value
}

func (o *RequestOptions[T]) AddQueryParam(key string, value string) {
	if o.QueryParams == nil {
		o.QueryParams = make(map[string]string)
	}
	o.QueryParams[key] = value
}

func (o *RequestOptions[T]) SetBody(body any) error {
	switch o.ContentType {
	case "application/json":
		jsonBody, err := json.Marshal(body)
		if err != nil {
			return err
		}
		o.Body = bytes.NewBuffer(jsonBody)
		return nil
	case "application/x-www-form-urlencoded":
		values := url.Values{}
		for key, value := range body.(map[string]string) {
			values.Add(key, value)
		}
		o.Body = strings.NewReader(values.Encode())
		return nil
	}
	return fmt.Errorf("unsupported content type: %s", o.ContentType)
}

func DoRequest[T any](method string, uri string, options *RequestOptions[T]) ([]byte, error) {
	httpClient := &http.Client{}

	if options != nil && len(options.QueryParams) > 0 {
		queryParams := url.Values{}
		for key, value := range options.QueryParams {
			queryParams.Add(key, value)
		}
		uri += "?" + queryParams.Encode()
	}

	body := io.Reader(nil)
	if options != nil {
		body = options.Body
	}

	req, err := http.NewRequest(method, uri, body)
	if err != nil {
		return nil, err
	}

	if options != nil {
		for key, value := range options.Headers {
			req.Header.Set(key, value)
		}
	}

	resp, err := httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if !(resp.StatusCode >= 200 && resp.StatusCode < 300) {
		if strings.HasPrefix(resp.Header.Get("Content-Type"), "application/json") {
			respBody, err := io.ReadAll(resp.Body)
			if err != nil {
				return nil, err
			}
			var errorResponse map[string]string
			if err := json.Unmarshal(respBody, &errorResponse); err == nil {
				return nil, fmt.Errorf("status code: %d, body: %s", resp.StatusCode, errorResponse["error_description"])
			}
		}
		return nil, fmt.Errorf("status code: %d", resp.StatusCode)
	}

	bytesBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if options != nil && options.Result != nil {
		return bytesBody, json.Unmarshal(bytesBody, options.Result)
	}

	return bytesBody, nil
}

// RemoteContentLength returns the Content-Length advertised for url without
// downloading the body. Returns 0 when the server does not advertise one.
func RemoteContentLength(url string) (int64, error) {
	resp, err := http.Head(url)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	if !(resp.StatusCode >= 200 && resp.StatusCode < 300) {
		return 0, fmt.Errorf("status code: %d", resp.StatusCode)
	}

	if resp.ContentLength < 0 {
		return 0, nil
	}
	return resp.ContentLength, nil
}
