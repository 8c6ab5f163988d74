package rbx

import (
	"fmt"
	"net/http"
	"strings"
)

// The error types below form a closed taxonomy: every failure a call can
// hit (transport, non-2xx status, local file read, JSON (de)serialization,
// numeric parse, structured DataStore payload) surfaces as exactly one of
// them. Match with errors.As.

// TransportError wraps a failure from the underlying HTTP transport.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string { return fmt.Sprintf("transport: %v", e.Err) }

func (e *TransportError) Unwrap() error { return e.Err }

// HTTPError is a non-2xx response from an endpoint whose error contract is
// a status code plus a human message.
type HTTPError struct {
	StatusCode int
	Message    string
}

func (e *HTTPError) Error() string { return fmt.Sprintf("http %d: %s", e.StatusCode, e.Message) }

// FileError is a local filesystem failure while loading a request body
// (place files, asset uploads). Never conflated with an HTTP failure.
type FileError struct {
	Path string
	Err  error
}

func (e *FileError) Error() string { return fmt.Sprintf("failed to read file %s: %v", e.Path, e.Err) }

func (e *FileError) Unwrap() error { return e.Err }

// JSONError is a JSON serialization or deserialization failure, including
// a DataStore error body that does not parse as the structured shape.
type JSONError struct {
	Err error
}

func (e *JSONError) Error() string { return fmt.Sprintf("json: %v", e.Err) }

func (e *JSONError) Unwrap() error { return e.Err }

// FloatParseError is returned when an endpoint that yields a bare numeric
// string (DataStore increment) produces something that does not parse as
// a float64. The raw text is preserved, never coerced to zero.
type FloatParseError struct {
	Value string
	Err   error
}

func (e *FloatParseError) Error() string {
	return fmt.Sprintf("failed to parse %q as float: %v", e.Value, e.Err)
}

func (e *FloatParseError) Unwrap() error { return e.Err }

// AssetTypeError is returned when an asset type cannot be inferred from a
// filename extension. No request is sent.
type AssetTypeError struct {
	Ext string
}

func (e *AssetTypeError) Error() string {
	return fmt.Sprintf("failed to infer asset type: unknown extension %q", e.Ext)
}

// ------------------------------
// DataStore structured errors
// ------------------------------

// DataStoreErrorCode is the service-defined error vocabulary carried in
// DataStore error details.
type DataStoreErrorCode string

const (
	ErrCodeContentLengthRequired                     DataStoreErrorCode = "ContentLengthRequired"
	ErrCodeInvalidUniverseID                         DataStoreErrorCode = "InvalidUniverseId"
	ErrCodeInvalidCursor                             DataStoreErrorCode = "InvalidCursor"
	ErrCodeInvalidVersionID                          DataStoreErrorCode = "InvalidVersionId"
	ErrCodeExistingValueNotNumeric                   DataStoreErrorCode = "ExistingValueNotNumeric"
	ErrCodeIncrementValueTooLarge                    DataStoreErrorCode = "IncrementValueTooLarge"
	ErrCodeIncrementValueTooSmall                    DataStoreErrorCode = "IncrementValueTooSmall"
	ErrCodeInvalidDataStoreScope                     DataStoreErrorCode = "InvalidDataStoreScope"
	ErrCodeInvalidEntryKey                           DataStoreErrorCode = "InvalidEntryKey"
	ErrCodeInvalidDataStoreName                      DataStoreErrorCode = "InvalidDataStoreName"
	ErrCodeInvalidStartTime                          DataStoreErrorCode = "InvalidStartTime"
	ErrCodeInvalidEndTime                            DataStoreErrorCode = "InvalidEndTime"
	ErrCodeInvalidAttributes                         DataStoreErrorCode = "InvalidAttributes"
	ErrCodeInvalidUserIDs                            DataStoreErrorCode = "InvalidUserIds"
	ErrCodeExclusiveCreateAndMatchVersionCannotBeSet DataStoreErrorCode = "ExclusiveCreateAndMatchVersionCannotBeSet"
	ErrCodeContentTooBig                             DataStoreErrorCode = "ContentTooBig"
	ErrCodeChecksumMismatch                          DataStoreErrorCode = "ChecksumMismatch"
	ErrCodeContentNotJSON                            DataStoreErrorCode = "ContentNotJson"
	ErrCodeInvalidSortOrder                          DataStoreErrorCode = "InvalidSortOrder"
	ErrCodeForbidden                                 DataStoreErrorCode = "Forbidden"
	ErrCodeInsufficientScope                         DataStoreErrorCode = "InsufficientScope"
	ErrCodeDataStoreNotFound                         DataStoreErrorCode = "DatastoreNotFound"
	ErrCodeEntryNotFound                             DataStoreErrorCode = "EntryNotFound"
	ErrCodeVersionNotFound                           DataStoreErrorCode = "VersionNotFound"
	ErrCodeTooManyRequests                           DataStoreErrorCode = "TooManyRequests"
	ErrCodeUnknown                                   DataStoreErrorCode = "Unknown"
)

// DataStoreErrorDetail is one entry of the error_details list.
type DataStoreErrorDetail struct {
	ErrorDetailType    string             `json:"errorDetailType"`
	DataStoreErrorCode DataStoreErrorCode `json:"datastoreErrorCode"`
}

// DataStoreError is the structured error payload returned by the
// DataStore and OrderedDataStore endpoints on a non-2xx status.
type DataStoreError struct {
	Err          string                 `json:"error"`
	Message      string                 `json:"message"`
	ErrorDetails []DataStoreErrorDetail `json:"errorDetails"`
}

func (e *DataStoreError) Error() string {
	codes := make([]string, 0, len(e.ErrorDetails))
	for _, d := range e.ErrorDetails {
		codes = append(codes, string(d.DataStoreErrorCode))
	}
	return fmt.Sprintf("[%s] - %s", strings.Join(codes, ", "), e.Message)
}

// HasCode reports whether any error detail carries the given code.
func (e *DataStoreError) HasCode(code DataStoreErrorCode) bool {
	for _, d := range e.ErrorDetails {
		if d.DataStoreErrorCode == code {
			return true
		}
	}
	return false
}

// cloudV2Message maps a cloud/v2 status code to its fixed human message.
func cloudV2Message(code int) string {
	switch code {
	case 400:
		return "invalid argument"
	case 403:
		return "permission denied"
	case 404:
		return "not found"
	case 409:
		return "aborted"
	case 429:
		return "resource exhausted"
	case 499:
		return "cancelled"
	case 500:
		return "internal server error"
	case 501:
		return "not implemented"
	case 503:
		return "unavailable"
	default:
		return "unknown error"
	}
}

// statusTableMessage resolves a status against an operation-specific table
// (experience publish, messaging), falling back to the HTTP reason phrase.
func statusTableMessage(table map[int]string, code int) string {
	if msg, ok := table[code]; ok {
		return msg
	}
	return http.StatusText(code)
}
