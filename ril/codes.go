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

// Legacy request codes.
const (
	RequestGetSimStatus                       uint32 = 1
	RequestEnterSimPin                        uint32 = 2
	RequestEnterSimPuk                        uint32 = 3
	RequestEnterSimPin2                       uint32 = 4
	RequestEnterSimPuk2                       uint32 = 5
	RequestChangeSimPin                       uint32 = 6
	RequestChangeSimPin2                      uint32 = 7
	RequestEnterNetworkDepersonalization      uint32 = 8
	RequestGetCurrentCalls                    uint32 = 9
	RequestDial                               uint32 = 10
	RequestGetImsi                            uint32 = 11
	RequestHangup                             uint32 = 12
	RequestHangupWaitingOrBackground          uint32 = 13
	RequestHangupForegroundResumeBackground   uint32 = 14
	RequestSwitchWaitingOrHoldingAndActive    uint32 = 15
	RequestConference                         uint32 = 16
	RequestUdub                               uint32 = 17
	RequestLastCallFailCause                  uint32 = 18
	RequestSignalStrength                     uint32 = 19
	RequestVoiceRegistrationState             uint32 = 20
	RequestDataRegistrationState              uint32 = 21
	RequestOperator                           uint32 = 22
	RequestRadioPower                         uint32 = 23
	RequestDtmf                               uint32 = 24
	RequestSendSms                            uint32 = 25
	RequestSendSmsExpectMore                  uint32 = 26
	RequestSetupDataCall                      uint32 = 27
	RequestSimIO                              uint32 = 28
	RequestSendUssd                           uint32 = 29
	RequestCancelUssd                         uint32 = 30
	RequestGetClir                            uint32 = 31
	RequestSetClir                            uint32 = 32
	RequestQueryCallForwardStatus             uint32 = 33
	RequestSetCallForward                     uint32 = 34
	RequestQueryCallWaiting                   uint32 = 35
	RequestSetCallWaiting                     uint32 = 36
	RequestSmsAcknowledge                     uint32 = 37
	RequestGetImei                            uint32 = 38
	RequestGetImeisv                          uint32 = 39
	RequestAnswer                             uint32 = 40
	RequestDeactivateDataCall                 uint32 = 41
	RequestQueryFacilityLock                  uint32 = 42
	RequestSetFacilityLock                    uint32 = 43
	RequestChangeBarringPassword              uint32 = 44
	RequestQueryNetworkSelectionMode          uint32 = 45
	RequestSetNetworkSelectionAutomatic       uint32 = 46
	RequestSetNetworkSelectionManual          uint32 = 47
	RequestQueryAvailableNetworks             uint32 = 48
	RequestDtmfStart                          uint32 = 49
	RequestDtmfStop                           uint32 = 50
	RequestBasebandVersion                    uint32 = 51
	RequestSeparateConnection                 uint32 = 52
	RequestSetMute                            uint32 = 53
	RequestGetMute                            uint32 = 54
	RequestQueryClip                          uint32 = 55
	RequestLastDataCallFailCause              uint32 = 56
	RequestDataCallList                       uint32 = 57
	RequestResetRadio                         uint32 = 58
	RequestOemHookRaw                         uint32 = 59
	RequestOemHookStrings                     uint32 = 60
	RequestScreenState                        uint32 = 61
	RequestSetSuppSvcNotification             uint32 = 62
	RequestWriteSmsToSim                      uint32 = 63
	RequestDeleteSmsOnSim                     uint32 = 64
	RequestSetBandMode                        uint32 = 65
	RequestQueryAvailableBandMode             uint32 = 66
	RequestStkGetProfile                      uint32 = 67
	RequestStkSetProfile                      uint32 = 68
	RequestStkSendEnvelopeCommand             uint32 = 69
	RequestStkSendTerminalResponse            uint32 = 70
	RequestStkHandleCallSetupRequestedFromSim uint32 = 71
	RequestExplicitCallTransfer               uint32 = 72
	RequestSetPreferredNetworkType            uint32 = 73
	RequestGetPreferredNetworkType            uint32 = 74
	RequestGetNeighboringCellIDs              uint32 = 75
	RequestSetLocationUpdates                 uint32 = 76
	RequestCdmaSetSubscriptionSource          uint32 = 77
	RequestCdmaSetRoamingPreference           uint32 = 78
	RequestCdmaQueryRoamingPreference         uint32 = 79
	RequestSetTtyMode                         uint32 = 80
	RequestQueryTtyMode                       uint32 = 81
	RequestCdmaSetPreferredVoicePrivacyMode   uint32 = 82
	RequestCdmaQueryPreferredVoicePrivacyMode uint32 = 83
	RequestCdmaFlash                          uint32 = 84
	RequestCdmaBurstDtmf                      uint32 = 85
	RequestCdmaValidateAndWriteAkey           uint32 = 86
	RequestCdmaSendSms                        uint32 = 87
	RequestCdmaSmsAcknowledge                 uint32 = 88
	RequestGsmGetBroadcastSmsConfig           uint32 = 89
	RequestGsmSetBroadcastSmsConfig           uint32 = 90
	RequestGsmSmsBroadcastActivation          uint32 = 91
	RequestCdmaGetBroadcastSmsConfig          uint32 = 92
	RequestCdmaSetBroadcastSmsConfig          uint32 = 93
	RequestCdmaSmsBroadcastActivation         uint32 = 94
	RequestCdmaSubscription                   uint32 = 95
	RequestCdmaWriteSmsToRuim                 uint32 = 96
	RequestCdmaDeleteSmsOnRuim                uint32 = 97
	RequestDeviceIdentity                     uint32 = 98
	RequestExitEmergencyCallbackMode          uint32 = 99
	RequestGetSmscAddress                     uint32 = 100
	RequestSetSmscAddress                     uint32 = 101
	RequestReportSmsMemoryStatus              uint32 = 102
	RequestReportStkServiceIsRunning          uint32 = 103
	RequestCdmaGetSubscriptionSource          uint32 = 104
	RequestIsimAuthentication                 uint32 = 105
	RequestAcknowledgeIncomingGsmSmsWithPdu   uint32 = 106
	RequestStkSendEnvelopeWithStatus          uint32 = 107
	RequestVoiceRadioTech                     uint32 = 108
	RequestGetCellInfoList                    uint32 = 109
	RequestSetUnsolCellInfoListRate           uint32 = 110
	RequestSetInitialAttachApn                uint32 = 111
	RequestImsRegistrationState               uint32 = 112
	RequestImsSendSms                         uint32 = 113
	RequestSimTransmitApduBasic               uint32 = 114
	RequestSimOpenChannel                     uint32 = 115
	RequestSimCloseChannel                    uint32 = 116
	RequestSimTransmitApduChannel             uint32 = 117
	RequestNvReadItem                         uint32 = 118
	RequestNvWriteItem                        uint32 = 119
	RequestNvWriteCdmaPrl                     uint32 = 120
	RequestNvResetConfig                      uint32 = 121
	RequestSetUiccSubscription                uint32 = 122
	RequestAllowData                          uint32 = 123
	RequestGetHardwareConfig                  uint32 = 124
	RequestSimAuthentication                  uint32 = 125
	RequestGetDcRtInfo                        uint32 = 126
	RequestSetDcRtInfoRate                    uint32 = 127
	RequestSetDataProfile                     uint32 = 128
	RequestShutdown                           uint32 = 129
	RequestGetRadioCapability                 uint32 = 130
	RequestSetRadioCapability                 uint32 = 131
	RequestStartLce                           uint32 = 132
	RequestStopLce                            uint32 = 133
	RequestPullLcedata                        uint32 = 134
	RequestGetActivityInfo                    uint32 = 135
	RequestSetCarrierRestrictions             uint32 = 136
	RequestGetCarrierRestrictions             uint32 = 137
	RequestSendDeviceState                    uint32 = 138
	RequestSetUnsolicitedResponseFilter       uint32 = 139
	RequestSetSimCardPower                    uint32 = 140
	RequestSetCarrierInfoImsiEncryption       uint32 = 141
	RequestStartNetworkScan                   uint32 = 142
	RequestStopNetworkScan                    uint32 = 143
	RequestStartKeepalive                     uint32 = 144
	RequestStopKeepalive                      uint32 = 145

	RequestResponseAcknowledgement uint32 = 800
)

// Legacy unsolicited codes.
const (
	UnsolRadioStateChanged             uint32 = 1000
	UnsolCallStateChanged              uint32 = 1001
	UnsolVoiceNetworkStateChanged      uint32 = 1002
	UnsolNewSms                        uint32 = 1003
	UnsolNewSmsStatusReport            uint32 = 1004
	UnsolNewSmsOnSim                   uint32 = 1005
	UnsolOnUssd                        uint32 = 1006
	UnsolOnUssdRequest                 uint32 = 1007
	UnsolNitzTimeReceived              uint32 = 1008
	UnsolSignalStrength                uint32 = 1009
	UnsolDataCallListChanged           uint32 = 1010
	UnsolSuppSvcNotification           uint32 = 1011
	UnsolStkSessionEnd                 uint32 = 1012
	UnsolStkProactiveCommand           uint32 = 1013
	UnsolStkEventNotify                uint32 = 1014
	UnsolStkCallSetup                  uint32 = 1015
	UnsolSimSmsStorageFull             uint32 = 1016
	UnsolSimRefresh                    uint32 = 1017
	UnsolCallRing                      uint32 = 1018
	UnsolSimStatusChanged              uint32 = 1019
	UnsolCdmaNewSms                    uint32 = 1020
	UnsolNewBroadcastSms               uint32 = 1021
	UnsolCdmaRuimSmsStorageFull        uint32 = 1022
	UnsolRestrictedStateChanged        uint32 = 1023
	UnsolEnterEmergencyCallbackMode    uint32 = 1024
	UnsolCdmaCallWaiting               uint32 = 1025
	UnsolCdmaOtaProvisionStatus        uint32 = 1026
	UnsolCdmaInfoRec                   uint32 = 1027
	UnsolOemHookRaw                    uint32 = 1028
	UnsolRingbackTone                  uint32 = 1029
	UnsolResendIncallMute              uint32 = 1030
	UnsolCdmaSubscriptionSourceChanged uint32 = 1031
	UnsolCdmaPrlChanged                uint32 = 1032
	UnsolExitEmergencyCallbackMode     uint32 = 1033
	UnsolRilConnected                  uint32 = 1034
	UnsolVoiceRadioTechChanged         uint32 = 1035
	UnsolCellInfoList                  uint32 = 1036
	UnsolImsNetworkStateChanged        uint32 = 1037
	UnsolUiccSubscriptionStatusChanged uint32 = 1038
	UnsolSrvccStateNotify              uint32 = 1039
	UnsolHardwareConfigChanged         uint32 = 1040
	UnsolDcRtInfoChanged               uint32 = 1041
	UnsolRadioCapability               uint32 = 1042
	UnsolOnSs                          uint32 = 1043
	UnsolStkCcAlphaNotify              uint32 = 1044
	UnsolLcedataRecv                   uint32 = 1045
	UnsolPcoData                       uint32 = 1046
	UnsolModemRestart                  uint32 = 1047
	UnsolCarrierInfoImsiEncryption     uint32 = 1048
	UnsolNetworkScanResult             uint32 = 1049
	UnsolKeepaliveStatus               uint32 = 1050
)

var requestNames = map[uint32]string{
	RequestGetSimStatus:                       "GET_SIM_STATUS",
	RequestEnterSimPin:                        "ENTER_SIM_PIN",
	RequestEnterSimPuk:                        "ENTER_SIM_PUK",
	RequestEnterSimPin2:                       "ENTER_SIM_PIN2",
	RequestEnterSimPuk2:                       "ENTER_SIM_PUK2",
	RequestChangeSimPin:                       "CHANGE_SIM_PIN",
	RequestChangeSimPin2:                      "CHANGE_SIM_PIN2",
	RequestEnterNetworkDepersonalization:      "ENTER_NETWORK_DEPERSONALIZATION",
	RequestGetCurrentCalls:                    "GET_CURRENT_CALLS",
	RequestDial:                               "DIAL",
	RequestGetImsi:                            "GET_IMSI",
	RequestHangup:                             "HANGUP",
	RequestHangupWaitingOrBackground:          "HANGUP_WAITING_OR_BACKGROUND",
	RequestHangupForegroundResumeBackground:   "HANGUP_FOREGROUND_RESUME_BACKGROUND",
	RequestSwitchWaitingOrHoldingAndActive:    "SWITCH_WAITING_OR_HOLDING_AND_ACTIVE",
	RequestConference:                         "CONFERENCE",
	RequestUdub:                               "UDUB",
	RequestLastCallFailCause:                  "LAST_CALL_FAIL_CAUSE",
	RequestSignalStrength:                     "SIGNAL_STRENGTH",
	RequestVoiceRegistrationState:             "VOICE_REGISTRATION_STATE",
	RequestDataRegistrationState:              "DATA_REGISTRATION_STATE",
	RequestOperator:                           "OPERATOR",
	RequestRadioPower:                         "RADIO_POWER",
	RequestDtmf:                               "DTMF",
	RequestSendSms:                            "SEND_SMS",
	RequestSendSmsExpectMore:                  "SEND_SMS_EXPECT_MORE",
	RequestSetupDataCall:                      "SETUP_DATA_CALL",
	RequestSimIO:                              "SIM_IO",
	RequestSendUssd:                           "SEND_USSD",
	RequestCancelUssd:                         "CANCEL_USSD",
	RequestGetClir:                            "GET_CLIR",
	RequestSetClir:                            "SET_CLIR",
	RequestQueryCallForwardStatus:             "QUERY_CALL_FORWARD_STATUS",
	RequestSetCallForward:                     "SET_CALL_FORWARD",
	RequestQueryCallWaiting:                   "QUERY_CALL_WAITING",
	RequestSetCallWaiting:                     "SET_CALL_WAITING",
	RequestSmsAcknowledge:                     "SMS_ACKNOWLEDGE",
	RequestGetImei:                            "GET_IMEI",
	RequestGetImeisv:                          "GET_IMEISV",
	RequestAnswer:                             "ANSWER",
	RequestDeactivateDataCall:                 "DEACTIVATE_DATA_CALL",
	RequestQueryFacilityLock:                  "QUERY_FACILITY_LOCK",
	RequestSetFacilityLock:                    "SET_FACILITY_LOCK",
	RequestChangeBarringPassword:              "CHANGE_BARRING_PASSWORD",
	RequestQueryNetworkSelectionMode:          "QUERY_NETWORK_SELECTION_MODE",
	RequestSetNetworkSelectionAutomatic:       "SET_NETWORK_SELECTION_AUTOMATIC",
	RequestSetNetworkSelectionManual:          "SET_NETWORK_SELECTION_MANUAL",
	RequestQueryAvailableNetworks:             "QUERY_AVAILABLE_NETWORKS",
	RequestDtmfStart:                          "DTMF_START",
	RequestDtmfStop:                           "DTMF_STOP",
	RequestBasebandVersion:                    "BASEBAND_VERSION",
	RequestSeparateConnection:                 "SEPARATE_CONNECTION",
	RequestSetMute:                            "SET_MUTE",
	RequestGetMute:                            "GET_MUTE",
	RequestQueryClip:                          "QUERY_CLIP",
	RequestLastDataCallFailCause:              "LAST_DATA_CALL_FAIL_CAUSE",
	RequestDataCallList:                       "DATA_CALL_LIST",
	RequestResetRadio:                         "RESET_RADIO",
	RequestOemHookRaw:                         "OEM_HOOK_RAW",
	RequestOemHookStrings:                     "OEM_HOOK_STRINGS",
	RequestScreenState:                        "SCREEN_STATE",
	RequestSetSuppSvcNotification:             "SET_SUPP_SVC_NOTIFICATION",
	RequestWriteSmsToSim:                      "WRITE_SMS_TO_SIM",
	RequestDeleteSmsOnSim:                     "DELETE_SMS_ON_SIM",
	RequestSetBandMode:                        "SET_BAND_MODE",
	RequestQueryAvailableBandMode:             "QUERY_AVAILABLE_BAND_MODE",
	RequestStkGetProfile:                      "STK_GET_PROFILE",
	RequestStkSetProfile:                      "STK_SET_PROFILE",
	RequestStkSendEnvelopeCommand:             "STK_SEND_ENVELOPE_COMMAND",
	RequestStkSendTerminalResponse:            "STK_SEND_TERMINAL_RESPONSE",
	RequestStkHandleCallSetupRequestedFromSim: "STK_HANDLE_CALL_SETUP_REQUESTED_FROM_SIM",
	RequestExplicitCallTransfer:               "EXPLICIT_CALL_TRANSFER",
	RequestSetPreferredNetworkType:            "SET_PREFERRED_NETWORK_TYPE",
	RequestGetPreferredNetworkType:            "GET_PREFERRED_NETWORK_TYPE",
	RequestGetNeighboringCellIDs:              "GET_NEIGHBORING_CELL_IDS",
	RequestSetLocationUpdates:                 "SET_LOCATION_UPDATES",
	RequestCdmaSetSubscriptionSource:          "CDMA_SET_SUBSCRIPTION_SOURCE",
	RequestCdmaSetRoamingPreference:           "CDMA_SET_ROAMING_PREFERENCE",
	RequestCdmaQueryRoamingPreference:         "CDMA_QUERY_ROAMING_PREFERENCE",
	RequestSetTtyMode:                         "SET_TTY_MODE",
	RequestQueryTtyMode:                       "QUERY_TTY_MODE",
	RequestCdmaSetPreferredVoicePrivacyMode:   "CDMA_SET_PREFERRED_VOICE_PRIVACY_MODE",
	RequestCdmaQueryPreferredVoicePrivacyMode: "CDMA_QUERY_PREFERRED_VOICE_PRIVACY_MODE",
	RequestCdmaFlash:                          "CDMA_FLASH",
	RequestCdmaBurstDtmf:                      "CDMA_BURST_DTMF",
	RequestCdmaValidateAndWriteAkey:           "CDMA_VALIDATE_AND_WRITE_AKEY",
	RequestCdmaSendSms:                        "CDMA_SEND_SMS",
	RequestCdmaSmsAcknowledge:                 "CDMA_SMS_ACKNOWLEDGE",
	RequestGsmGetBroadcastSmsConfig:           "GSM_GET_BROADCAST_SMS_CONFIG",
	RequestGsmSetBroadcastSmsConfig:           "GSM_SET_BROADCAST_SMS_CONFIG",
	RequestGsmSmsBroadcastActivation:          "GSM_SMS_BROADCAST_ACTIVATION",
	RequestCdmaGetBroadcastSmsConfig:          "CDMA_GET_BROADCAST_SMS_CONFIG",
	RequestCdmaSetBroadcastSmsConfig:          "CDMA_SET_BROADCAST_SMS_CONFIG",
	RequestCdmaSmsBroadcastActivation:         "CDMA_SMS_BROADCAST_ACTIVATION",
	RequestCdmaSubscription:                   "CDMA_SUBSCRIPTION",
	RequestCdmaWriteSmsToRuim:                 "CDMA_WRITE_SMS_TO_RUIM",
	RequestCdmaDeleteSmsOnRuim:                "CDMA_DELETE_SMS_ON_RUIM",
	RequestDeviceIdentity:                     "DEVICE_IDENTITY",
	RequestExitEmergencyCallbackMode:          "EXIT_EMERGENCY_CALLBACK_MODE",
	RequestGetSmscAddress:                     "GET_SMSC_ADDRESS",
	RequestSetSmscAddress:                     "SET_SMSC_ADDRESS",
	RequestReportSmsMemoryStatus:              "REPORT_SMS_MEMORY_STATUS",
	RequestReportStkServiceIsRunning:          "REPORT_STK_SERVICE_IS_RUNNING",
	RequestCdmaGetSubscriptionSource:          "CDMA_GET_SUBSCRIPTION_SOURCE",
	RequestIsimAuthentication:                 "ISIM_AUTHENTICATION",
	RequestAcknowledgeIncomingGsmSmsWithPdu:   "ACKNOWLEDGE_INCOMING_GSM_SMS_WITH_PDU",
	RequestStkSendEnvelopeWithStatus:          "STK_SEND_ENVELOPE_WITH_STATUS",
	RequestVoiceRadioTech:                     "VOICE_RADIO_TECH",
	RequestGetCellInfoList:                    "GET_CELL_INFO_LIST",
	RequestSetUnsolCellInfoListRate:           "SET_UNSOL_CELL_INFO_LIST_RATE",
	RequestSetInitialAttachApn:                "SET_INITIAL_ATTACH_APN",
	RequestImsRegistrationState:               "IMS_REGISTRATION_STATE",
	RequestImsSendSms:                         "IMS_SEND_SMS",
	RequestSimTransmitApduBasic:               "SIM_TRANSMIT_APDU_BASIC",
	RequestSimOpenChannel:                     "SIM_OPEN_CHANNEL",
	RequestSimCloseChannel:                    "SIM_CLOSE_CHANNEL",
	RequestSimTransmitApduChannel:             "SIM_TRANSMIT_APDU_CHANNEL",
	RequestNvReadItem:                         "NV_READ_ITEM",
	RequestNvWriteItem:                        "NV_WRITE_ITEM",
	RequestNvWriteCdmaPrl:                     "NV_WRITE_CDMA_PRL",
	RequestNvResetConfig:                      "NV_RESET_CONFIG",
	RequestSetUiccSubscription:                "SET_UICC_SUBSCRIPTION",
	RequestAllowData:                          "ALLOW_DATA",
	RequestGetHardwareConfig:                  "GET_HARDWARE_CONFIG",
	RequestSimAuthentication:                  "SIM_AUTHENTICATION",
	RequestGetDcRtInfo:                        "GET_DC_RT_INFO",
	RequestSetDcRtInfoRate:                    "SET_DC_RT_INFO_RATE",
	RequestSetDataProfile:                     "SET_DATA_PROFILE",
	RequestShutdown:                           "SHUTDOWN",
	RequestGetRadioCapability:                 "GET_RADIO_CAPABILITY",
	RequestSetRadioCapability:                 "SET_RADIO_CAPABILITY",
	RequestStartLce:                           "START_LCE",
	RequestStopLce:                            "STOP_LCE",
	RequestPullLcedata:                        "PULL_LCEDATA",
	RequestGetActivityInfo:                    "GET_ACTIVITY_INFO",
	RequestSetCarrierRestrictions:             "SET_CARRIER_RESTRICTIONS",
	RequestGetCarrierRestrictions:             "GET_CARRIER_RESTRICTIONS",
	RequestSendDeviceState:                    "SEND_DEVICE_STATE",
	RequestSetUnsolicitedResponseFilter:       "SET_UNSOLICITED_RESPONSE_FILTER",
	RequestSetSimCardPower:                    "SET_SIM_CARD_POWER",
	RequestSetCarrierInfoImsiEncryption:       "SET_CARRIER_INFO_IMSI_ENCRYPTION",
	RequestStartNetworkScan:                   "START_NETWORK_SCAN",
	RequestStopNetworkScan:                    "STOP_NETWORK_SCAN",
	RequestStartKeepalive:                     "START_KEEPALIVE",
	RequestStopKeepalive:                      "STOP_KEEPALIVE",

	RequestResponseAcknowledgement: "RESPONSE_ACKNOWLEDGEMENT",
}

var unsolNames = map[uint32]string{
	UnsolRadioStateChanged:             "RADIO_STATE_CHANGED",
	UnsolCallStateChanged:              "CALL_STATE_CHANGED",
	UnsolVoiceNetworkStateChanged:      "VOICE_NETWORK_STATE_CHANGED",
	UnsolNewSms:                        "NEW_SMS",
	UnsolNewSmsStatusReport:            "NEW_SMS_STATUS_REPORT",
	UnsolNewSmsOnSim:                   "NEW_SMS_ON_SIM",
	UnsolOnUssd:                        "ON_USSD",
	UnsolOnUssdRequest:                 "ON_USSD_REQUEST",
	UnsolNitzTimeReceived:              "NITZ_TIME_RECEIVED",
	UnsolSignalStrength:                "SIGNAL_STRENGTH",
	UnsolDataCallListChanged:           "DATA_CALL_LIST_CHANGED",
	UnsolSuppSvcNotification:           "SUPP_SVC_NOTIFICATION",
	UnsolStkSessionEnd:                 "STK_SESSION_END",
	UnsolStkProactiveCommand:           "STK_PROACTIVE_COMMAND",
	UnsolStkEventNotify:                "STK_EVENT_NOTIFY",
	UnsolStkCallSetup:                  "STK_CALL_SETUP",
	UnsolSimSmsStorageFull:             "SIM_SMS_STORAGE_FULL",
	UnsolSimRefresh:                    "SIM_REFRESH",
	UnsolCallRing:                      "CALL_RING",
	UnsolSimStatusChanged:              "SIM_STATUS_CHANGED",
	UnsolCdmaNewSms:                    "CDMA_NEW_SMS",
	UnsolNewBroadcastSms:               "NEW_BROADCAST_SMS",
	UnsolCdmaRuimSmsStorageFull:        "CDMA_RUIM_SMS_STORAGE_FULL",
	UnsolRestrictedStateChanged:        "RESTRICTED_STATE_CHANGED",
	UnsolEnterEmergencyCallbackMode:    "ENTER_EMERGENCY_CALLBACK_MODE",
	UnsolCdmaCallWaiting:               "CDMA_CALL_WAITING",
	UnsolCdmaOtaProvisionStatus:        "CDMA_OTA_PROVISION_STATUS",
	UnsolCdmaInfoRec:                   "CDMA_INFO_REC",
	UnsolOemHookRaw:                    "OEM_HOOK_RAW",
	UnsolRingbackTone:                  "RINGBACK_TONE",
	UnsolResendIncallMute:              "RESEND_INCALL_MUTE",
	UnsolCdmaSubscriptionSourceChanged: "CDMA_SUBSCRIPTION_SOURCE_CHANGED",
	UnsolCdmaPrlChanged:                "CDMA_PRL_CHANGED",
	UnsolExitEmergencyCallbackMode:     "EXIT_EMERGENCY_CALLBACK_MODE",
	UnsolRilConnected:                  "RIL_CONNECTED",
	UnsolVoiceRadioTechChanged:         "VOICE_RADIO_TECH_CHANGED",
	UnsolCellInfoList:                  "CELL_INFO_LIST",
	UnsolImsNetworkStateChanged:        "IMS_NETWORK_STATE_CHANGED",
	UnsolUiccSubscriptionStatusChanged: "UICC_SUBSCRIPTION_STATUS_CHANGED",
	UnsolSrvccStateNotify:              "SRVCC_STATE_NOTIFY",
	UnsolHardwareConfigChanged:         "HARDWARE_CONFIG_CHANGED",
	UnsolDcRtInfoChanged:               "DC_RT_INFO_CHANGED",
	UnsolRadioCapability:               "RADIO_CAPABILITY",
	UnsolOnSs:                          "ON_SS",
	UnsolStkCcAlphaNotify:              "STK_CC_ALPHA_NOTIFY",
	UnsolLcedataRecv:                   "LCEDATA_RECV",
	UnsolPcoData:                       "PCO_DATA",
	UnsolModemRestart:                  "MODEM_RESTART",
	UnsolCarrierInfoImsiEncryption:     "CARRIER_INFO_IMSI_ENCRYPTION",
	UnsolNetworkScanResult:             "NETWORK_SCAN_RESULT",
	UnsolKeepaliveStatus:               "KEEPALIVE_STATUS",
}
