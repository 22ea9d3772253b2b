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

import "github.com/henrylee2cn/rilbinder/hidl"

// Common shapes.
var (
	ResponseInfoShape = hidl.NewShape("RadioResponseInfo", 12,
		hidl.I32("type"), hidl.I32("serial"), hidl.I32("error"))
	MonostateShape = hidl.NewShape("Monostate", 1, hidl.U8("unused"))
)

// SIM card shapes.
var (
	AppStatusShape = hidl.NewShape("AppStatus", 64,
		hidl.I32("appType"), hidl.I32("appState"), hidl.I32("persoSubstate"),
		hidl.Str("aidPtr"), hidl.Str("appLabelPtr"),
		hidl.I32("pin1Replaced"), hidl.I32("pin1"), hidl.I32("pin2"))
	CardStatusShape = hidl.NewShape("CardStatus", 40,
		hidl.I32("cardState"), hidl.I32("universalPinState"),
		hidl.I32("gsmUmtsSubscriptionAppIndex"), hidl.I32("cdmaSubscriptionAppIndex"),
		hidl.I32("imsSubscriptionAppIndex"), hidl.Vec("applications", AppStatusShape))
	CardStatus12Shape = hidl.NewShape("CardStatus_1_2", 80,
		hidl.Inline("base", CardStatusShape), hidl.U32("physicalSlotId"), hidl.Str("atr"), hidl.Str("iccid"))
	CardStatus14Shape = hidl.NewShape("CardStatus_1_4", 96,
		hidl.Inline("base", CardStatus12Shape), hidl.Str("eid"))

	IccIoShape = hidl.NewShape("IccIo", 88,
		hidl.I32("command"), hidl.I32("fileId"), hidl.Str("path"),
		hidl.I32("p1"), hidl.I32("p2"), hidl.I32("p3"),
		hidl.Str("data"), hidl.Str("pin2"), hidl.Str("aid"))
	IccIoResultShape = hidl.NewShape("IccIoResult", 24,
		hidl.I32("sw1"), hidl.I32("sw2"), hidl.Str("simResponse"))
	SimApduShape = hidl.NewShape("SimApdu", 40,
		hidl.I32("sessionId"), hidl.I32("cla"), hidl.I32("instruction"),
		hidl.I32("p1"), hidl.I32("p2"), hidl.I32("p3"), hidl.Str("data"))
	SimRefreshResultShape = hidl.NewShape("SimRefreshResult", 24,
		hidl.I32("type"), hidl.I32("efId"), hidl.Str("aid"))
	SelectUiccSubShape = hidl.NewShape("SelectUiccSub", 16,
		hidl.I32("slot"), hidl.I32("appIndex"), hidl.I32("subType"), hidl.I32("actStatus"))
)

// Call shapes.
var (
	UusInfoShape = hidl.NewShape("UusInfo", 24,
		hidl.I32("uusType"), hidl.I32("uusDcs"), hidl.Str("uusData"))
	CallShape = hidl.NewShape("Call", 88,
		hidl.I32("state"), hidl.I32("index"), hidl.I32("toa"),
		hidl.Bool("isMpty"), hidl.Bool("isMT"), hidl.U8("als"), hidl.Bool("isVoice"), hidl.Bool("isVoicePrivacy"),
		hidl.Str("number"), hidl.I32("numberPresentation"),
		hidl.Str("name"), hidl.I32("namePresentation"),
		hidl.Vec("uusInfo", UusInfoShape))
	Call12Shape = hidl.NewShape("Call_1_2", 96,
		hidl.Inline("base", CallShape), hidl.I32("audioQuality"))
	DialShape = hidl.NewShape("Dial", 40,
		hidl.Str("address"), hidl.I32("clir"), hidl.Vec("uusInfo", UusInfoShape))
	LastCallFailCauseInfoShape = hidl.NewShape("LastCallFailCauseInfo", 24,
		hidl.I32("causeCode"), hidl.Str("vendorCause"))
	CallForwardInfoShape = hidl.NewShape("CallForwardInfo", 40,
		hidl.I32("status"), hidl.I32("reason"), hidl.I32("serviceClass"), hidl.I32("toa"),
		hidl.Str("number"), hidl.I32("timeSeconds"))
	SuppSvcNotificationShape = hidl.NewShape("SuppSvcNotification", 32,
		hidl.Bool("isMT"), hidl.I32("code"), hidl.I32("index"), hidl.I32("type"), hidl.Str("number"))
)

// Messaging shapes.
var (
	GsmSmsMessageShape = hidl.NewShape("GsmSmsMessage", 32,
		hidl.Str("smscPdu"), hidl.Str("pdu"))
	SendSmsResultShape = hidl.NewShape("SendSmsResult", 32,
		hidl.I32("messageRef"), hidl.Str("ackPDU"), hidl.I32("errorCode"))
	SmsWriteArgsShape = hidl.NewShape("SmsWriteArgs", 40,
		hidl.I32("status"), hidl.Str("pdu"), hidl.Str("smsc"))
	GsmBroadcastSmsConfigInfoShape = hidl.NewShape("GsmBroadcastSmsConfigInfo", 20,
		hidl.I32("fromServiceId"), hidl.I32("toServiceId"),
		hidl.I32("fromCodeScheme"), hidl.I32("toCodeScheme"), hidl.Bool("selected"))
)

// Network and data shapes.
var (
	OperatorInfoShape = hidl.NewShape("OperatorInfo", 56,
		hidl.Str("alphaLong"), hidl.Str("alphaShort"), hidl.Str("operatorNumeric"), hidl.I32("status"))
	RadioCapabilityShape = hidl.NewShape("RadioCapability", 40,
		hidl.I32("session"), hidl.I32("phase"), hidl.I32("raf"), hidl.Str("logicalModemUuid"), hidl.I32("status"))

	DataProfileInfoShape = hidl.NewShape("DataProfileInfo", 152,
		hidl.I32("profileId"), hidl.Str("apn"), hidl.Str("protocol"), hidl.Str("roamingProtocol"),
		hidl.I32("authType"), hidl.Str("user"), hidl.Str("password"),
		hidl.I32("type"), hidl.I32("maxConnsTime"), hidl.I32("maxConns"), hidl.I32("waitTime"),
		hidl.Bool("enabled"), hidl.I32("supportedApnTypesBitmap"), hidl.I32("bearerBitmap"),
		hidl.I32("mtu"), hidl.I32("mvnoType"), hidl.Str("mvnoMatchData"))
	DataProfileInfo14Shape = hidl.NewShape("DataProfileInfo_1_4", 112,
		hidl.I32("profileId"), hidl.Str("apn"), hidl.I32("protocol"), hidl.I32("roamingProtocol"),
		hidl.I32("authType"), hidl.Str("user"), hidl.Str("password"),
		hidl.I32("type"), hidl.I32("maxConnsTime"), hidl.I32("maxConns"), hidl.I32("waitTime"),
		hidl.Bool("enabled"), hidl.I32("supportedApnTypesBitmap"), hidl.I32("bearerBitmap"),
		hidl.I32("mtu"), hidl.Bool("preferred"), hidl.Bool("persistent"))

	SetupDataCallResultShape = hidl.NewShape("SetupDataCallResult", 120,
		hidl.I32("status"), hidl.I32("suggestedRetryTime"), hidl.I32("cid"), hidl.I32("active"),
		hidl.Str("type"), hidl.Str("ifname"), hidl.Str("addresses"), hidl.Str("dnses"),
		hidl.Str("gateways"), hidl.Str("pcscf"), hidl.I32("mtu"))
	SetupDataCallResult14Shape = hidl.NewShape("SetupDataCallResult_1_4", 112,
		hidl.I32("cause"), hidl.I32("suggestedRetryTime"), hidl.I32("cid"), hidl.I32("active"),
		hidl.I32("type"), hidl.Str("ifname"),
		hidl.ScalarVec("addresses", hidl.KindString), hidl.ScalarVec("dnses", hidl.KindString),
		hidl.ScalarVec("gateways", hidl.KindString), hidl.ScalarVec("pcscf", hidl.KindString),
		hidl.I32("mtu"))
)

// Signal strength shapes.
var (
	GsmSignalStrengthShape = hidl.NewShape("GsmSignalStrength", 12,
		hidl.U32("signalStrength"), hidl.U32("bitErrorRate"), hidl.I32("timingAdvance"))
	WcdmaSignalStrengthShape = hidl.NewShape("WcdmaSignalStrength", 8,
		hidl.I32("signalStrength"), hidl.I32("bitErrorRate"))
	WcdmaSignalStrength12Shape = hidl.NewShape("WcdmaSignalStrength_1_2", 16,
		hidl.Inline("base", WcdmaSignalStrengthShape), hidl.U32("rscp"), hidl.U32("ecno"))
	CdmaSignalStrengthShape = hidl.NewShape("CdmaSignalStrength", 8,
		hidl.U32("dbm"), hidl.U32("ecio"))
	EvdoSignalStrengthShape = hidl.NewShape("EvdoSignalStrength", 12,
		hidl.U32("dbm"), hidl.U32("ecio"), hidl.U32("signalNoiseRatio"))
	LteSignalStrengthShape = hidl.NewShape("LteSignalStrength", 24,
		hidl.U32("signalStrength"), hidl.U32("rsrp"), hidl.U32("rsrq"),
		hidl.I32("rssnr"), hidl.U32("cqi"), hidl.U32("timingAdvance"))
	TdScdmaSignalStrengthShape = hidl.NewShape("TdScdmaSignalStrength", 4,
		hidl.U32("rscp"))
	TdscdmaSignalStrength12Shape = hidl.NewShape("TdscdmaSignalStrength_1_2", 12,
		hidl.U32("signalStrength"), hidl.U32("bitErrorRate"), hidl.U32("rscp"))
	NrSignalStrengthShape = hidl.NewShape("NrSignalStrength", 24,
		hidl.I32("ssRsrp"), hidl.I32("ssRsrq"), hidl.I32("ssSinr"),
		hidl.I32("csiRsrp"), hidl.I32("csiRsrq"), hidl.I32("csiSinr"))

	SignalStrengthShape = hidl.NewShape("SignalStrength", 60,
		hidl.Inline("gw", GsmSignalStrengthShape),
		hidl.Inline("cdma", CdmaSignalStrengthShape),
		hidl.Inline("evdo", EvdoSignalStrengthShape),
		hidl.Inline("lte", LteSignalStrengthShape),
		hidl.Inline("tdScdma", TdScdmaSignalStrengthShape))
	SignalStrength12Shape = hidl.NewShape("SignalStrength_1_2", 76,
		hidl.Inline("gsm", GsmSignalStrengthShape),
		hidl.Inline("cdma", CdmaSignalStrengthShape),
		hidl.Inline("evdo", EvdoSignalStrengthShape),
		hidl.Inline("lte", LteSignalStrengthShape),
		hidl.Inline("tdScdma", TdScdmaSignalStrengthShape),
		hidl.Inline("wcdma", WcdmaSignalStrength12Shape))
	SignalStrength14Shape = hidl.NewShape("SignalStrength_1_4", 108,
		hidl.Inline("gsm", GsmSignalStrengthShape),
		hidl.Inline("cdma", CdmaSignalStrengthShape),
		hidl.Inline("evdo", EvdoSignalStrengthShape),
		hidl.Inline("lte", LteSignalStrengthShape),
		hidl.Inline("tdscdma", TdscdmaSignalStrength12Shape),
		hidl.Inline("wcdma", WcdmaSignalStrength12Shape),
		hidl.Inline("nr", NrSignalStrengthShape))
)

// Cell identity shapes.
var (
	CellIdentityGsmShape = hidl.NewShape("CellIdentityGsm", 48,
		hidl.Str("mcc"), hidl.Str("mnc"), hidl.I32("lac"), hidl.I32("cid"), hidl.I32("arfcn"), hidl.U8("bsic"))
	CellIdentityWcdmaShape = hidl.NewShape("CellIdentityWcdma", 48,
		hidl.Str("mcc"), hidl.Str("mnc"), hidl.I32("lac"), hidl.I32("cid"), hidl.I32("psc"), hidl.I32("uarfcn"))
	CellIdentityCdmaShape = hidl.NewShape("CellIdentityCdma", 20,
		hidl.I32("networkId"), hidl.I32("systemId"), hidl.I32("baseStationId"),
		hidl.I32("longitude"), hidl.I32("latitude"))
	CellIdentityLteShape = hidl.NewShape("CellIdentityLte", 48,
		hidl.Str("mcc"), hidl.Str("mnc"), hidl.I32("ci"), hidl.I32("pci"), hidl.I32("tac"), hidl.I32("earfcn"))
	CellIdentityTdscdmaShape = hidl.NewShape("CellIdentityTdscdma", 48,
		hidl.Str("mcc"), hidl.Str("mnc"), hidl.I32("lac"), hidl.I32("cid"), hidl.I32("cpid"))
	CellIdentityShape = hidl.NewShape("CellIdentity", 88,
		hidl.I32("cellInfoType"),
		hidl.Vec("cellIdentityGsm", CellIdentityGsmShape),
		hidl.Vec("cellIdentityWcdma", CellIdentityWcdmaShape),
		hidl.Vec("cellIdentityCdma", CellIdentityCdmaShape),
		hidl.Vec("cellIdentityLte", CellIdentityLteShape),
		hidl.Vec("cellIdentityTdscdma", CellIdentityTdscdmaShape))

	CellIdentityOperatorNamesShape = hidl.NewShape("CellIdentityOperatorNames", 32,
		hidl.Str("alphaLong"), hidl.Str("alphaShort"))
	CellIdentityGsm12Shape = hidl.NewShape("CellIdentityGsm_1_2", 80,
		hidl.Inline("base", CellIdentityGsmShape), hidl.Inline("operatorNames", CellIdentityOperatorNamesShape))
	CellIdentityWcdma12Shape = hidl.NewShape("CellIdentityWcdma_1_2", 80,
		hidl.Inline("base", CellIdentityWcdmaShape), hidl.Inline("operatorNames", CellIdentityOperatorNamesShape))
	CellIdentityCdma12Shape = hidl.NewShape("CellIdentityCdma_1_2", 56,
		hidl.Inline("base", CellIdentityCdmaShape), hidl.Inline("operatorNames", CellIdentityOperatorNamesShape))
	CellIdentityLte12Shape = hidl.NewShape("CellIdentityLte_1_2", 88,
		hidl.Inline("base", CellIdentityLteShape), hidl.Inline("operatorNames", CellIdentityOperatorNamesShape),
		hidl.I32("bandwidth"))
	CellIdentityTdscdma12Shape = hidl.NewShape("CellIdentityTdscdma_1_2", 88,
		hidl.Inline("base", CellIdentityTdscdmaShape), hidl.Inline("operatorNames", CellIdentityOperatorNamesShape),
		hidl.I32("uarfcn"))
	CellIdentity12Shape = hidl.NewShape("CellIdentity_1_2", 88,
		hidl.I32("cellInfoType"),
		hidl.Vec("cellIdentityGsm", CellIdentityGsm12Shape),
		hidl.Vec("cellIdentityWcdma", CellIdentityWcdma12Shape),
		hidl.Vec("cellIdentityCdma", CellIdentityCdma12Shape),
		hidl.Vec("cellIdentityLte", CellIdentityLte12Shape),
		hidl.Vec("cellIdentityTdscdma", CellIdentityTdscdma12Shape))
	CellIdentityNrShape = hidl.NewShape("CellIdentityNr", 88,
		hidl.Str("mcc"), hidl.Str("mnc"), hidl.U64("nci"), hidl.U32("pci"), hidl.I32("tac"), hidl.I32("nrarfcn"),
		hidl.Inline("operatorNames", CellIdentityOperatorNamesShape))
)

// Cell info shapes from @1.0.
var (
	CellInfoGsmShape = hidl.NewShape("CellInfoGsm", 64,
		hidl.Inline("cellIdentityGsm", CellIdentityGsmShape),
		hidl.Inline("signalStrengthGsm", GsmSignalStrengthShape))
	CellInfoCdmaShape = hidl.NewShape("CellInfoCdma", 40,
		hidl.Inline("cellIdentityCdma", CellIdentityCdmaShape),
		hidl.Inline("signalStrengthCdma", CdmaSignalStrengthShape),
		hidl.Inline("signalStrengthEvdo", EvdoSignalStrengthShape))
	CellInfoLteShape = hidl.NewShape("CellInfoLte", 72,
		hidl.Inline("cellIdentityLte", CellIdentityLteShape),
		hidl.Inline("signalStrengthLte", LteSignalStrengthShape))
	CellInfoWcdmaShape = hidl.NewShape("CellInfoWcdma", 56,
		hidl.Inline("cellIdentityWcdma", CellIdentityWcdmaShape),
		hidl.Inline("signalStrengthWcdma", WcdmaSignalStrengthShape))
	CellInfoTdscdmaShape = hidl.NewShape("CellInfoTdscdma", 56,
		hidl.Inline("cellIdentityTdscdma", CellIdentityTdscdmaShape),
		hidl.Inline("signalStrengthTdscdma", TdScdmaSignalStrengthShape))
	CellInfoShape = hidl.NewShape("CellInfo", 104,
		hidl.I32("cellInfoType"), hidl.Bool("registered"), hidl.I32("timeStampType"), hidl.U64("timeStamp"),
		hidl.Vec("gsm", CellInfoGsmShape),
		hidl.Vec("cdma", CellInfoCdmaShape),
		hidl.Vec("lte", CellInfoLteShape),
		hidl.Vec("wcdma", CellInfoWcdmaShape),
		hidl.Vec("tdscdma", CellInfoTdscdmaShape))
)

// Cell info shapes from @1.2.
var (
	CellInfoGsm12Shape = hidl.NewShape("CellInfoGsm_1_2", 96,
		hidl.Inline("cellIdentityGsm", CellIdentityGsm12Shape),
		hidl.Inline("signalStrengthGsm", GsmSignalStrengthShape))
	CellInfoCdma12Shape = hidl.NewShape("CellInfoCdma_1_2", 80,
		hidl.Inline("cellIdentityCdma", CellIdentityCdma12Shape),
		hidl.Inline("signalStrengthCdma", CdmaSignalStrengthShape),
		hidl.Inline("signalStrengthEvdo", EvdoSignalStrengthShape))
	CellInfoLte12Shape = hidl.NewShape("CellInfoLte_1_2", 112,
		hidl.Inline("cellIdentityLte", CellIdentityLte12Shape),
		hidl.Inline("signalStrengthLte", LteSignalStrengthShape))
	CellInfoWcdma12Shape = hidl.NewShape("CellInfoWcdma_1_2", 96,
		hidl.Inline("cellIdentityWcdma", CellIdentityWcdma12Shape),
		hidl.Inline("signalStrengthWcdma", WcdmaSignalStrength12Shape))
	CellInfoTdscdma12Shape = hidl.NewShape("CellInfoTdscdma_1_2", 104,
		hidl.Inline("cellIdentityTdscdma", CellIdentityTdscdma12Shape),
		hidl.Inline("signalStrengthTdscdma", TdscdmaSignalStrength12Shape))
	CellInfo12Shape = hidl.NewShape("CellInfo_1_2", 112,
		hidl.I32("cellInfoType"), hidl.Bool("registered"), hidl.I32("timeStampType"), hidl.U64("timeStamp"),
		hidl.Vec("gsm", CellInfoGsm12Shape),
		hidl.Vec("cdma", CellInfoCdma12Shape),
		hidl.Vec("lte", CellInfoLte12Shape),
		hidl.Vec("wcdma", CellInfoWcdma12Shape),
		hidl.Vec("tdscdma", CellInfoTdscdma12Shape),
		hidl.I32("connectionStatus"))
)

// Cell info shapes from @1.4.
var (
	CellConfigLteShape = hidl.NewShape("CellConfigLte", 1, hidl.Bool("isEndcAvailable"))
	CellInfoLte14Shape = hidl.NewShape("CellInfoLte_1_4", 120,
		hidl.Inline("base", CellInfoLte12Shape), hidl.Inline("cellConfig", CellConfigLteShape))
	CellInfoNrShape = hidl.NewShape("CellInfoNr", 112,
		hidl.Inline("signalStrength", NrSignalStrengthShape),
		hidl.Inline("cellidentity", CellIdentityNrShape))
	CellInfo14Shape = hidl.NewShape("CellInfo_1_4", 136,
		hidl.Bool("isRegistered"), hidl.I32("connectionStatus"),
		hidl.SafeUnion("info",
			CellInfoGsm12Shape, CellInfoCdma12Shape, CellInfoWcdma12Shape,
			CellInfoTdscdma12Shape, CellInfoLte14Shape, CellInfoNrShape))
)

// Registration state shapes.
var (
	VoiceRegStateResultShape = hidl.NewShape("VoiceRegStateResult", 120,
		hidl.I32("regState"), hidl.I32("rat"), hidl.Bool("cssSupported"), hidl.I32("roamingIndicator"),
		hidl.I32("systemIsInPrl"), hidl.I32("defaultRoamingIndicator"), hidl.I32("reasonForDenial"),
		hidl.Inline("cellIdentity", CellIdentityShape))
	DataRegStateResultShape = hidl.NewShape("DataRegStateResult", 104,
		hidl.I32("regState"), hidl.I32("rat"), hidl.I32("reasonDataDenied"), hidl.I32("maxDataCalls"),
		hidl.Inline("cellIdentity", CellIdentityShape))
	VoiceRegStateResult12Shape = hidl.NewShape("VoiceRegStateResult_1_2", 120,
		hidl.I32("regState"), hidl.I32("rat"), hidl.Bool("cssSupported"), hidl.I32("roamingIndicator"),
		hidl.I32("systemIsInPrl"), hidl.I32("defaultRoamingIndicator"), hidl.I32("reasonForDenial"),
		hidl.Inline("cellIdentity", CellIdentity12Shape))
	DataRegStateResult12Shape = hidl.NewShape("DataRegStateResult_1_2", 104,
		hidl.I32("regState"), hidl.I32("rat"), hidl.I32("reasonDataDenied"), hidl.I32("maxDataCalls"),
		hidl.Inline("cellIdentity", CellIdentity12Shape))

	LteVopsInfoShape = hidl.NewShape("LteVopsInfo", 2,
		hidl.Bool("isVopsSupported"), hidl.Bool("isEmcBearerSupported"))
	NrIndicatorsShape = hidl.NewShape("NrIndicators", 3,
		hidl.Bool("isEndcAvailable"), hidl.Bool("isDcNrRestricted"), hidl.Bool("isNrAvailable"))
	DataRegStateResult14Shape = hidl.NewShape("DataRegStateResult_1_4", 112,
		hidl.Inline("base", DataRegStateResult12Shape),
		hidl.SafeUnion("vopsInfo", MonostateShape, LteVopsInfoShape),
		hidl.Inline("nrIndicators", NrIndicatorsShape))
)
