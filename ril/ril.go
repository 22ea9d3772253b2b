// Package ril holds the numbering of the legacy socket RIL protocol.
//
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

package ril

import (
	"fmt"
)

// ResponseType classifies a response forwarded to the host.
type ResponseType int

// Response types.
const (
	ResponseNone ResponseType = iota - 1
	ResponseSolicited
	ResponseSolicitedAck
	ResponseSolicitedAckExp
)

var responseTypeNames = map[ResponseType]string{
	ResponseNone:            "NONE",
	ResponseSolicited:       "SOLICITED",
	ResponseSolicitedAck:    "SOLICITED_ACK",
	ResponseSolicitedAckExp: "SOLICITED_ACK_EXP",
}

// String implements fmt.Stringer.
func (t ResponseType) String() string {
	if s, ok := responseTypeNames[t]; ok {
		return s
	}
	return fmt.Sprintf("RESPONSE_TYPE(%d)", int(t))
}

// IndicationType classifies an indication forwarded to the host.
type IndicationType int

// Indication types.
const (
	IndicationUnsolicited IndicationType = iota
	IndicationUnsolicitedAckExp
)

// String implements fmt.Stringer.
func (t IndicationType) String() string {
	switch t {
	case IndicationUnsolicited:
		return "UNSOLICITED"
	case IndicationUnsolicitedAckExp:
		return "UNSOLICITED_ACK_EXP"
	}
	return fmt.Sprintf("INDICATION_TYPE(%d)", int(t))
}

// Legacy error codes.
const (
	ErrSuccess                int32 = 0
	ErrRadioNotAvailable      int32 = 1
	ErrGenericFailure         int32 = 2
	ErrPasswordIncorrect      int32 = 3
	ErrSimPin2                int32 = 4
	ErrSimPuk2                int32 = 5
	ErrRequestNotSupported    int32 = 6
	ErrCancelled              int32 = 7
	ErrOpNotAllowedDuringCall int32 = 8
	ErrOpNotAllowedBeforeReg  int32 = 9
	ErrSmsSendFailRetry       int32 = 10
	ErrSimAbsent              int32 = 11
	ErrSubscriptionNotAvail   int32 = 12
	ErrModeNotSupported       int32 = 13
	ErrFdnCheckFailure        int32 = 14
	ErrIllegalSimOrMe         int32 = 15
	ErrMissingResource        int32 = 16
	ErrNoSuchElement          int32 = 17
)

var errorNames = [...]string{
	"SUCCESS",
	"RADIO_NOT_AVAILABLE",
	"GENERIC_FAILURE",
	"PASSWORD_INCORRECT",
	"SIM_PIN2",
	"SIM_PUK2",
	"REQUEST_NOT_SUPPORTED",
	"CANCELLED",
	"OP_NOT_ALLOWED_DURING_VOICE_CALL",
	"OP_NOT_ALLOWED_BEFORE_REG_TO_NW",
	"SMS_SEND_FAIL_RETRY",
	"SIM_ABSENT",
	"SUBSCRIPTION_NOT_AVAILABLE",
	"MODE_NOT_SUPPORTED",
	"FDN_CHECK_FAILURE",
	"ILLEGAL_SIM_OR_ME",
	"MISSING_RESOURCE",
	"NO_SUCH_ELEMENT",
}

// ErrorText returns the name of a legacy error code.
func ErrorText(code int32) string {
	if code >= 0 && int(code) < len(errorNames) {
		return errorNames[code]
	}
	return fmt.Sprintf("ERROR(%d)", code)
}

// RequestName returns the name of a legacy request code.
func RequestName(code uint32) string {
	if s, ok := requestNames[code]; ok {
		return s
	}
	return fmt.Sprintf("REQUEST(%d)", code)
}

// UnsolName returns the name of a legacy unsolicited code.
func UnsolName(code uint32) string {
	if s, ok := unsolNames[code]; ok {
		return s
	}
	return fmt.Sprintf("UNSOL(%d)", code)
}

// Legacy RadioTechnology values above this one are numbered two higher
// than the HIDL RadioTechnology enum.
const TechOffsetThreshold int32 = 4

// TechOffset is subtracted from legacy technology codes above
// TechOffsetThreshold.
const TechOffset int32 = 2

// VersionOffset is added to the interface revision to form the RIL
// version reported to the host.
const VersionOffset = 100
