// Copyright 2015-2018 HenryLee. All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package rilbinder

import (
	"github.com/henrylee2cn/goutil/status"
)

// Status a handling status with code, msg, cause and stack.
type Status = status.Status

var (
	// NewStatus creates a message status with code, msg and cause.
	// NOTE:
	//  code=0 means no error
	// TYPE:
	//  func NewStatus(code int32, msg string, cause interface{}) *Status
	NewStatus = status.New
)

// NewStatusByCodeText creates a message status with code, msg, cause or stack.
// NOTE:
//  The msg comes from the CodeText(code) value.
func NewStatusByCodeText(code int32, cause interface{}, tagStack bool) *Status {
	stat := NewStatus(code, CodeText(code), cause)
	if tagStack {
		stat.TagStack(1)
	}
	return stat
}

// Transport status codes.
// NOTE:
//  unknown error code: -1.
//  connection error code range: [100,199].
//  request error code range: [400,499].
const (
	CodeUnknownError      int32 = -1
	CodeOK                int32 = 0
	CodeNotConnected      int32 = 102
	CodeTransactionFailed int32 = 104
	CodeConnectFailed     int32 = 105
	CodeEncodeFailed      int32 = 400
	CodeUnknownCommand    int32 = 404
	CodeNoOemHook         int32 = 405
)

// CodeText returns the status code text.
// If the type is undefined returns 'Unknown Error'.
func CodeText(statCode int32) string {
	switch statCode {
	case CodeOK:
		return ""
	case CodeNotConnected:
		return "Not Connected"
	case CodeTransactionFailed:
		return "Transaction Failed"
	case CodeConnectFailed:
		return "Connect Failed"
	case CodeEncodeFailed:
		return "Encode Failed"
	case CodeUnknownCommand:
		return "Unknown Command"
	case CodeNoOemHook:
		return "No OEM Hook"
	case CodeUnknownError:
		fallthrough
	default:
		return "Unknown Error"
	}
}

// IsConnError determines whether the status is a connection error.
func IsConnError(stat *Status) bool {
	if stat == nil {
		return false
	}
	code := stat.Code()
	return code == CodeNotConnected || code == CodeConnectFailed
}
