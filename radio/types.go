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

package radio

// RespType is RadioResponseType.
type RespType uint32

// Response types.
const (
	RespSolicited       RespType = 0
	RespSolicitedAck    RespType = 1
	RespSolicitedAckExp RespType = 2
)

// IndType is RadioIndicationType.
type IndType uint32

// Indication types.
const (
	IndUnsolicited IndType = 0
	IndAckExp      IndType = 1
)

// Error values of RadioResponseInfo.
const (
	ErrorNone              int32 = 0
	ErrorRadioNotAvailable int32 = 1
	ErrorGenericFailure    int32 = 2
)

// Tech is RadioTechnology.
type Tech int32

// Radio technologies.
const (
	TechUnknown Tech = iota
	TechGPRS
	TechEDGE
	TechUMTS
	TechIS95A
	TechIS95B
	TechOneXRTT
	TechEVDO0
	TechEVDOA
	TechHSDPA
	TechHSUPA
	TechHSPA
	TechEVDOB
	TechEHRPD
	TechLTE
	TechHSPAP
	TechGSM
	TechTDSCDMA
	TechIWLAN
	TechLTECA
)

// Raf is a RadioAccessFamily bitmask, one bit per Tech.
type Raf uint32

// RafOf returns the family bit of t.
func RafOf(t Tech) Raf {
	return Raf(1) << uint(t)
}

// Access families grouped by generation.
var (
	Raf2G = RafOf(TechGSM) | RafOf(TechGPRS) | RafOf(TechEDGE)
	Raf3G = RafOf(TechUMTS) | RafOf(TechHSDPA) | RafOf(TechHSUPA) | RafOf(TechHSPA) | RafOf(TechHSPAP)
	Raf4G = RafOf(TechLTE) | RafOf(TechLTECA)
)

// AccessNetwork is AccessNetwork from @1.1.
type AccessNetwork int32

// Access networks.
const (
	AccessNetworkUnknown  AccessNetwork = 0
	AccessNetworkGeran    AccessNetwork = 1
	AccessNetworkUtran    AccessNetwork = 2
	AccessNetworkEutran   AccessNetwork = 3
	AccessNetworkCdma2000 AccessNetwork = 4
	AccessNetworkIwlan    AccessNetwork = 5
)

// AccessNetworkOf maps a radio technology to its access network.
func AccessNetworkOf(t Tech) AccessNetwork {
	switch t {
	case TechGPRS, TechEDGE, TechGSM:
		return AccessNetworkGeran
	case TechUMTS, TechHSDPA, TechHSPAP, TechHSUPA, TechHSPA, TechTDSCDMA:
		return AccessNetworkUtran
	case TechIS95A, TechIS95B, TechOneXRTT, TechEVDO0, TechEVDOA, TechEVDOB, TechEHRPD:
		return AccessNetworkCdma2000
	case TechLTE, TechLTECA:
		return AccessNetworkEutran
	case TechIWLAN:
		return AccessNetworkIwlan
	}
	return AccessNetworkUnknown
}

// DataProfileID values.
const (
	DataProfileDefault  int32 = 0
	DataProfileTethered int32 = 1
	DataProfileIms      int32 = 2
	DataProfileFota     int32 = 3
	DataProfileCbs      int32 = 4
	DataProfileInvalid  int32 = -1
)

// ApnTypes bits.
const (
	ApnTypeNone      int32 = 0
	ApnTypeDefault   int32 = 1 << 0
	ApnTypeMms       int32 = 1 << 1
	ApnTypeSupl      int32 = 1 << 2
	ApnTypeDun       int32 = 1 << 3
	ApnTypeHipri     int32 = 1 << 4
	ApnTypeFota      int32 = 1 << 5
	ApnTypeIms       int32 = 1 << 6
	ApnTypeCbs       int32 = 1 << 7
	ApnTypeIa        int32 = 1 << 8
	ApnTypeEmergency int32 = 1 << 9
)

// ApnTypesOf returns the APN type mask implied by a data profile id.
func ApnTypesOf(profileID int32) int32 {
	switch profileID {
	case DataProfileInvalid:
		return ApnTypeNone
	case DataProfileIms:
		return ApnTypeIms
	case DataProfileCbs:
		return ApnTypeCbs
	case DataProfileFota:
		return ApnTypeFota
	case DataProfileDefault:
		return ApnTypeDefault | ApnTypeSupl | ApnTypeIa
	}
	return ApnTypeMms
}

// DataRequestReason values from @1.2.
const (
	DataRequestReasonNormal   int32 = 1
	DataRequestReasonShutdown int32 = 2
	DataRequestReasonHandover int32 = 3
)

// PdpProtocolType values from @1.4.
const (
	PdpProtocolUnknown      int32 = -1
	PdpProtocolIP           int32 = 0
	PdpProtocolIPv6         int32 = 1
	PdpProtocolIPv4v6       int32 = 2
	PdpProtocolPPP          int32 = 3
	PdpProtocolNonIP        int32 = 4
	PdpProtocolUnstructured int32 = 5
)

var pdpProtocolNames = map[int32]string{
	PdpProtocolIP:           "IP",
	PdpProtocolIPv6:         "IPV6",
	PdpProtocolIPv4v6:       "IPV4V6",
	PdpProtocolPPP:          "PPP",
	PdpProtocolNonIP:        "NON-IP",
	PdpProtocolUnstructured: "UNSTRUCTURED",
}

// PdpProtocolOf parses a legacy protocol name.
func PdpProtocolOf(name string) int32 {
	for k, v := range pdpProtocolNames {
		if v == name {
			return k
		}
	}
	return PdpProtocolUnknown
}

// PdpProtocolName returns the legacy name of a protocol, "" if unknown.
func PdpProtocolName(p int32) string {
	return pdpProtocolNames[p]
}

// DeviceStateType values.
const (
	DeviceStatePowerSaveMode   int32 = 0
	DeviceStateChargingState   int32 = 1
	DeviceStateLowDataExpected int32 = 2
)

// CellInfoType values from @1.0.
const (
	CellInfoTypeNone    int32 = 0
	CellInfoTypeGsm     int32 = 1
	CellInfoTypeCdma    int32 = 2
	CellInfoTypeLte     int32 = 3
	CellInfoTypeWcdma   int32 = 4
	CellInfoTypeTdscdma int32 = 5
)

// Discriminators of the CellInfo.Info safe_union from @1.4.
const (
	CellInfo14Gsm uint8 = iota
	CellInfo14Cdma
	CellInfo14Wcdma
	CellInfo14Tdscdma
	CellInfo14Lte
	CellInfo14Nr
)

// Preferred network types, the legacy PREF_NET_TYPE values.
const (
	PrefNetGsmWcdma    int32 = 0
	PrefNetGsmOnly     int32 = 1
	PrefNetLteGsmWcdma int32 = 9
	PrefNetLteOnly     int32 = 11
	PrefNetLteWcdma    int32 = 12
)

// PrefNetOf projects an access family mask to a preferred network type.
func PrefNetOf(raf Raf) int32 {
	has2G := raf&Raf2G != 0
	has3G := raf&Raf3G != 0
	has4G := raf&Raf4G != 0
	switch {
	case has2G && has3G && has4G:
		return PrefNetLteGsmWcdma
	case has2G && has3G:
		return PrefNetGsmWcdma
	case has3G && has4G:
		return PrefNetLteWcdma
	case has4G && !has2G && !has3G:
		return PrefNetLteOnly
	}
	return PrefNetGsmOnly
}

// OperatorStatus values.
const (
	OperatorUnknown   int32 = 0
	OperatorAvailable int32 = 1
	OperatorCurrent   int32 = 2
	OperatorForbidden int32 = 3
)
