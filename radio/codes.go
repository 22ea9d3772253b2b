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

// IRadio request transactions.
const (
	// android.hardware.radio@1.0::IRadio
	ReqSetResponseFunctions             uint32 = 1
	ReqGetIccCardStatus                 uint32 = 2
	ReqSupplyIccPinForApp               uint32 = 3
	ReqSupplyIccPukForApp               uint32 = 4
	ReqSupplyIccPin2ForApp              uint32 = 5
	ReqSupplyIccPuk2ForApp              uint32 = 6
	ReqChangeIccPinForApp               uint32 = 7
	ReqChangeIccPin2ForApp              uint32 = 8
	ReqSupplyNetworkDepersonalization   uint32 = 9
	ReqGetCurrentCalls                  uint32 = 10
	ReqDial                             uint32 = 11
	ReqGetImsiForApp                    uint32 = 12
	ReqHangup                           uint32 = 13
	ReqHangupWaitingOrBackground        uint32 = 14
	ReqHangupForegroundResumeBackground uint32 = 15
	ReqSwitchWaitingOrHoldingAndActive  uint32 = 16
	ReqConference                       uint32 = 17
	ReqRejectCall                       uint32 = 18
	ReqGetLastCallFailCause             uint32 = 19
	ReqGetSignalStrength                uint32 = 20
	ReqGetVoiceRegistrationState        uint32 = 21
	ReqGetDataRegistrationState         uint32 = 22
	ReqGetOperator                      uint32 = 23
	ReqSetRadioPower                    uint32 = 24
	ReqSendDtmf                         uint32 = 25
	ReqSendSms                          uint32 = 26
	ReqSendSMSExpectMore                uint32 = 27
	ReqSetupDataCall                    uint32 = 28
	ReqIccIOForApp                      uint32 = 29
	ReqSendUssd                         uint32 = 30
	ReqCancelPendingUssd                uint32 = 31
	ReqGetClir                          uint32 = 32
	ReqSetClir                          uint32 = 33
	ReqGetCallForwardStatus             uint32 = 34
	ReqSetCallForward                   uint32 = 35
	ReqGetCallWaiting                   uint32 = 36
	ReqSetCallWaiting                   uint32 = 37
	ReqAcknowledgeLastIncomingGsmSms    uint32 = 38
	ReqAcceptCall                       uint32 = 39
	ReqDeactivateDataCall               uint32 = 40
	ReqGetFacilityLockForApp            uint32 = 41
	ReqSetFacilityLockForApp            uint32 = 42
	ReqSetBarringPassword               uint32 = 43
	ReqGetNetworkSelectionMode          uint32 = 44
	ReqSetNetworkSelectionModeAutomatic uint32 = 45
	ReqSetNetworkSelectionModeManual    uint32 = 46
	ReqGetAvailableNetworks             uint32 = 47
	ReqStartDtmf                        uint32 = 48
	ReqStopDtmf                         uint32 = 49
	ReqGetBasebandVersion               uint32 = 50
	ReqSeparateConnection               uint32 = 51
	ReqSetMute                          uint32 = 52
	ReqGetMute                          uint32 = 53
	ReqGetClip                          uint32 = 54
	ReqGetDataCallList                  uint32 = 55
	ReqSetSuppServiceNotifications      uint32 = 56
	ReqWriteSmsToSim                    uint32 = 57
	ReqDeleteSmsOnSim                   uint32 = 58
	ReqSetBandMode                      uint32 = 59
	ReqGetAvailableBandModes            uint32 = 60
	ReqSendEnvelope                     uint32 = 61
	ReqSendTerminalResponseToSim        uint32 = 62
	ReqHandleStkCallSetupRequestFromSim uint32 = 63
	ReqExplicitCallTransfer             uint32 = 64
	ReqSetPreferredNetworkType          uint32 = 65
	ReqGetPreferredNetworkType          uint32 = 66
	ReqGetNeighboringCids               uint32 = 67
	ReqSetLocationUpdates               uint32 = 68
	ReqSetCdmaSubscriptionSource        uint32 = 69
	ReqSetCdmaRoamingPreference         uint32 = 70
	ReqGetCdmaRoamingPreference         uint32 = 71
	ReqSetTTYMode                       uint32 = 72
	ReqGetTTYMode                       uint32 = 73
	ReqSetPreferredVoicePrivacy         uint32 = 74
	ReqGetPreferredVoicePrivacy         uint32 = 75
	ReqSendCDMAFeatureCode              uint32 = 76
	ReqSendBurstDtmf                    uint32 = 77
	ReqSendCdmaSms                      uint32 = 78
	ReqAcknowledgeLastIncomingCdmaSms   uint32 = 79
	ReqGetGsmBroadcastConfig            uint32 = 80
	ReqSetGsmBroadcastConfig            uint32 = 81
	ReqSetGsmBroadcastActivation        uint32 = 82
	ReqGetCdmaBroadcastConfig           uint32 = 83
	ReqSetCdmaBroadcastConfig           uint32 = 84
	ReqSetCdmaBroadcastActivation       uint32 = 85
	ReqGetCDMASubscription              uint32 = 86
	ReqWriteSmsToRuim                   uint32 = 87
	ReqDeleteSmsOnRuim                  uint32 = 88
	ReqGetDeviceIdentity                uint32 = 89
	ReqExitEmergencyCallbackMode        uint32 = 90
	ReqGetSmscAddress                   uint32 = 91
	ReqSetSmscAddress                   uint32 = 92
	ReqReportSmsMemoryStatus            uint32 = 93
	ReqReportStkServiceIsRunning        uint32 = 94
	ReqGetCdmaSubscriptionSource        uint32 = 95
	ReqRequestIsimAuthentication        uint32 = 96
	ReqAcknowledgeIncomingGsmSmsWithPdu uint32 = 97
	ReqSendEnvelopeWithStatus           uint32 = 98
	ReqGetVoiceRadioTechnology          uint32 = 99
	ReqGetCellInfoList                  uint32 = 100
	ReqSetCellInfoListRate              uint32 = 101
	ReqSetInitialAttachApn              uint32 = 102
	ReqGetImsRegistrationState          uint32 = 103
	ReqSendImsSms                       uint32 = 104
	ReqIccTransmitApduBasicChannel      uint32 = 105
	ReqIccOpenLogicalChannel            uint32 = 106
	ReqIccCloseLogicalChannel           uint32 = 107
	ReqIccTransmitApduLogicalChannel    uint32 = 108
	ReqNvReadItem                       uint32 = 109
	ReqNvWriteItem                      uint32 = 110
	ReqNvWriteCdmaPrl                   uint32 = 111
	ReqNvResetConfig                    uint32 = 112
	ReqSetUiccSubscription              uint32 = 113
	ReqSetDataAllowed                   uint32 = 114
	ReqGetHardwareConfig                uint32 = 115
	ReqRequestIccSimAuthentication      uint32 = 116
	ReqSetDataProfile                   uint32 = 117
	ReqRequestShutdown                  uint32 = 118
	ReqGetRadioCapability               uint32 = 119
	ReqSetRadioCapability               uint32 = 120
	ReqStartLceService                  uint32 = 121
	ReqStopLceService                   uint32 = 122
	ReqPullLceData                      uint32 = 123
	ReqGetModemActivityInfo             uint32 = 124
	ReqSetAllowedCarriers               uint32 = 125
	ReqGetAllowedCarriers               uint32 = 126
	ReqSendDeviceState                  uint32 = 127
	ReqSetIndicationFilter              uint32 = 128
	ReqSetSimCardPower                  uint32 = 129
	ReqResponseAcknowledgement          uint32 = 130

	// android.hardware.radio@1.1::IRadio
	ReqSetCarrierInfoForImsiEncryption uint32 = 131
	ReqSetSimCardPower_1_1             uint32 = 132
	ReqStartNetworkScan                uint32 = 133
	ReqStopNetworkScan                 uint32 = 134
	ReqStartKeepalive                  uint32 = 135
	ReqStopKeepalive                   uint32 = 136

	// android.hardware.radio@1.2::IRadio
	ReqStartNetworkScan_1_2               uint32 = 137
	ReqSetIndicationFilter_1_2            uint32 = 138
	ReqSetSignalStrengthReportingCriteria uint32 = 139
	ReqSetLinkCapacityReportingCriteria   uint32 = 140
	ReqSetupDataCall_1_2                  uint32 = 141
	ReqDeactivateDataCall_1_2             uint32 = 142

	// android.hardware.radio@1.3::IRadio
	ReqSetSystemSelectionChannels uint32 = 143
	ReqEnableModem                uint32 = 144
	ReqGetModemStackStatus        uint32 = 145

	// android.hardware.radio@1.4::IRadio
	ReqSetupDataCall_1_4             uint32 = 146
	ReqSetInitialAttachApn_1_4       uint32 = 147
	ReqSetDataProfile_1_4            uint32 = 148
	ReqEmergencyDial                 uint32 = 149
	ReqStartNetworkScan_1_4          uint32 = 150
	ReqGetPreferredNetworkTypeBitmap uint32 = 151
	ReqSetPreferredNetworkTypeBitmap uint32 = 152
	ReqSetAllowedCarriers_1_4        uint32 = 153
	ReqGetAllowedCarriers_1_4        uint32 = 154
	ReqGetSignalStrength_1_4         uint32 = 155
)

// IRadioResponse transactions.
const (
	// android.hardware.radio@1.0::IRadioResponse
	RespGetIccCardStatus                 uint32 = 1
	RespSupplyIccPinForApp               uint32 = 2
	RespSupplyIccPukForApp               uint32 = 3
	RespSupplyIccPin2ForApp              uint32 = 4
	RespSupplyIccPuk2ForApp              uint32 = 5
	RespChangeIccPinForApp               uint32 = 6
	RespChangeIccPin2ForApp              uint32 = 7
	RespSupplyNetworkDepersonalization   uint32 = 8
	RespGetCurrentCalls                  uint32 = 9
	RespDial                             uint32 = 10
	RespGetImsiForApp                    uint32 = 11
	RespHangup                           uint32 = 12
	RespHangupWaitingOrBackground        uint32 = 13
	RespHangupForegroundResumeBackground uint32 = 14
	RespSwitchWaitingOrHoldingAndActive  uint32 = 15
	RespConference                       uint32 = 16
	RespRejectCall                       uint32 = 17
	RespGetLastCallFailCause             uint32 = 18
	RespGetSignalStrength                uint32 = 19
	RespGetVoiceRegistrationState        uint32 = 20
	RespGetDataRegistrationState         uint32 = 21
	RespGetOperator                      uint32 = 22
	RespSetRadioPower                    uint32 = 23
	RespSendDtmf                         uint32 = 24
	RespSendSms                          uint32 = 25
	RespSendSMSExpectMore                uint32 = 26
	RespSetupDataCall                    uint32 = 27
	RespIccIOForApp                      uint32 = 28
	RespSendUssd                         uint32 = 29
	RespCancelPendingUssd                uint32 = 30
	RespGetClir                          uint32 = 31
	RespSetClir                          uint32 = 32
	RespGetCallForwardStatus             uint32 = 33
	RespSetCallForward                   uint32 = 34
	RespGetCallWaiting                   uint32 = 35
	RespSetCallWaiting                   uint32 = 36
	RespAcknowledgeLastIncomingGsmSms    uint32 = 37
	RespAcceptCall                       uint32 = 38
	RespDeactivateDataCall               uint32 = 39
	RespGetFacilityLockForApp            uint32 = 40
	RespSetFacilityLockForApp            uint32 = 41
	RespSetBarringPassword               uint32 = 42
	RespGetNetworkSelectionMode          uint32 = 43
	RespSetNetworkSelectionModeAutomatic uint32 = 44
	RespSetNetworkSelectionModeManual    uint32 = 45
	RespGetAvailableNetworks             uint32 = 46
	RespStartDtmf                        uint32 = 47
	RespStopDtmf                         uint32 = 48
	RespGetBasebandVersion               uint32 = 49
	RespSeparateConnection               uint32 = 50
	RespSetMute                          uint32 = 51
	RespGetMute                          uint32 = 52
	RespGetClip                          uint32 = 53
	RespGetDataCallList                  uint32 = 54
	RespSetSuppServiceNotifications      uint32 = 55
	RespWriteSmsToSim                    uint32 = 56
	RespDeleteSmsOnSim                   uint32 = 57
	RespSetBandMode                      uint32 = 58
	RespGetAvailableBandModes            uint32 = 59
	RespSendEnvelope                     uint32 = 60
	RespSendTerminalResponseToSim        uint32 = 61
	RespHandleStkCallSetupRequestFromSim uint32 = 62
	RespExplicitCallTransfer             uint32 = 63
	RespSetPreferredNetworkType          uint32 = 64
	RespGetPreferredNetworkType          uint32 = 65
	RespGetNeighboringCids               uint32 = 66
	RespSetLocationUpdates               uint32 = 67
	RespSetCdmaSubscriptionSource        uint32 = 68
	RespSetCdmaRoamingPreference         uint32 = 69
	RespGetCdmaRoamingPreference         uint32 = 70
	RespSetTTYMode                       uint32 = 71
	RespGetTTYMode                       uint32 = 72
	RespSetPreferredVoicePrivacy         uint32 = 73
	RespGetPreferredVoicePrivacy         uint32 = 74
	RespSendCDMAFeatureCode              uint32 = 75
	RespSendBurstDtmf                    uint32 = 76
	RespSendCdmaSms                      uint32 = 77
	RespAcknowledgeLastIncomingCdmaSms   uint32 = 78
	RespGetGsmBroadcastConfig            uint32 = 79
	RespSetGsmBroadcastConfig            uint32 = 80
	RespSetGsmBroadcastActivation        uint32 = 81
	RespGetCdmaBroadcastConfig           uint32 = 82
	RespSetCdmaBroadcastConfig           uint32 = 83
	RespSetCdmaBroadcastActivation       uint32 = 84
	RespGetCDMASubscription              uint32 = 85
	RespWriteSmsToRuim                   uint32 = 86
	RespDeleteSmsOnRuim                  uint32 = 87
	RespGetDeviceIdentity                uint32 = 88
	RespExitEmergencyCallbackMode        uint32 = 89
	RespGetSmscAddress                   uint32 = 90
	RespSetSmscAddress                   uint32 = 91
	RespReportSmsMemoryStatus            uint32 = 92
	RespReportStkServiceIsRunning        uint32 = 93
	RespGetCdmaSubscriptionSource        uint32 = 94
	RespRequestIsimAuthentication        uint32 = 95
	RespAcknowledgeIncomingGsmSmsWithPdu uint32 = 96
	RespSendEnvelopeWithStatus           uint32 = 97
	RespGetVoiceRadioTechnology          uint32 = 98
	RespGetCellInfoList                  uint32 = 99
	RespSetCellInfoListRate              uint32 = 100
	RespSetInitialAttachApn              uint32 = 101
	RespGetImsRegistrationState          uint32 = 102
	RespSendImsSms                       uint32 = 103
	RespIccTransmitApduBasicChannel      uint32 = 104
	RespIccOpenLogicalChannel            uint32 = 105
	RespIccCloseLogicalChannel           uint32 = 106
	RespIccTransmitApduLogicalChannel    uint32 = 107
	RespNvReadItem                       uint32 = 108
	RespNvWriteItem                      uint32 = 109
	RespNvWriteCdmaPrl                   uint32 = 110
	RespNvResetConfig                    uint32 = 111
	RespSetUiccSubscription              uint32 = 112
	RespSetDataAllowed                   uint32 = 113
	RespGetHardwareConfig                uint32 = 114
	RespRequestIccSimAuthentication      uint32 = 115
	RespSetDataProfile                   uint32 = 116
	RespRequestShutdown                  uint32 = 117
	RespGetRadioCapability               uint32 = 118
	RespSetRadioCapability               uint32 = 119
	RespStartLceService                  uint32 = 120
	RespStopLceService                   uint32 = 121
	RespPullLceData                      uint32 = 122
	RespGetModemActivityInfo             uint32 = 123
	RespSetAllowedCarriers               uint32 = 124
	RespGetAllowedCarriers               uint32 = 125
	RespSendDeviceState                  uint32 = 126
	RespSetIndicationFilter              uint32 = 127
	RespSetSimCardPower                  uint32 = 128
	RespAcknowledgeRequest               uint32 = 129

	// android.hardware.radio@1.1::IRadioResponse
	RespSetCarrierInfoForImsiEncryption uint32 = 130
	RespSetSimCardPower_1_1             uint32 = 131
	RespStartNetworkScan                uint32 = 132
	RespStopNetworkScan                 uint32 = 133
	RespStartKeepalive                  uint32 = 134
	RespStopKeepalive                   uint32 = 135

	// android.hardware.radio@1.2::IRadioResponse
	RespGetCellInfoList_1_2                uint32 = 136
	RespGetIccCardStatus_1_2               uint32 = 137
	RespSetSignalStrengthReportingCriteria uint32 = 138
	RespSetLinkCapacityReportingCriteria   uint32 = 139
	RespGetCurrentCalls_1_2                uint32 = 140
	RespGetSignalStrength_1_2              uint32 = 141
	RespGetVoiceRegistrationState_1_2      uint32 = 142
	RespGetDataRegistrationState_1_2       uint32 = 143

	// android.hardware.radio@1.3::IRadioResponse
	RespSetSystemSelectionChannels uint32 = 144
	RespEnableModem                uint32 = 145
	RespGetModemStackStatus        uint32 = 146

	// android.hardware.radio@1.4::IRadioResponse
	RespEmergencyDial                 uint32 = 147
	RespStartNetworkScan_1_4          uint32 = 148
	RespGetCellInfoList_1_4           uint32 = 149
	RespGetDataRegistrationState_1_4  uint32 = 150
	RespGetIccCardStatus_1_4          uint32 = 151
	RespGetPreferredNetworkTypeBitmap uint32 = 152
	RespSetPreferredNetworkTypeBitmap uint32 = 153
	RespGetDataCallList_1_4           uint32 = 154
	RespSetupDataCall_1_4             uint32 = 155
	RespSetAllowedCarriers_1_4        uint32 = 156
	RespGetAllowedCarriers_1_4        uint32 = 157
	RespGetSignalStrength_1_4         uint32 = 158
)

// IRadioIndication transactions.
const (
	// android.hardware.radio@1.0::IRadioIndication
	IndRadioStateChanged                uint32 = 1
	IndCallStateChanged                 uint32 = 2
	IndNetworkStateChanged              uint32 = 3
	IndNewSms                           uint32 = 4
	IndNewSmsStatusReport               uint32 = 5
	IndNewSmsOnSim                      uint32 = 6
	IndOnUssd                           uint32 = 7
	IndNitzTimeReceived                 uint32 = 8
	IndCurrentSignalStrength            uint32 = 9
	IndDataCallListChanged              uint32 = 10
	IndSuppSvcNotify                    uint32 = 11
	IndStkSessionEnd                    uint32 = 12
	IndStkProactiveCommand              uint32 = 13
	IndStkEventNotify                   uint32 = 14
	IndStkCallSetup                     uint32 = 15
	IndSimSmsStorageFull                uint32 = 16
	IndSimRefresh                       uint32 = 17
	IndCallRing                         uint32 = 18
	IndSimStatusChanged                 uint32 = 19
	IndCdmaNewSms                       uint32 = 20
	IndNewBroadcastSms                  uint32 = 21
	IndCdmaRuimSmsStorageFull           uint32 = 22
	IndRestrictedStateChanged           uint32 = 23
	IndEnterEmergencyCallbackMode       uint32 = 24
	IndCdmaCallWaiting                  uint32 = 25
	IndCdmaOtaProvisionStatus           uint32 = 26
	IndCdmaInfoRec                      uint32 = 27
	IndIndicateRingbackTone             uint32 = 28
	IndResendIncallMute                 uint32 = 29
	IndCdmaSubscriptionSourceChanged    uint32 = 30
	IndCdmaPrlChanged                   uint32 = 31
	IndExitEmergencyCallbackMode        uint32 = 32
	IndRilConnected                     uint32 = 33
	IndVoiceRadioTechChanged            uint32 = 34
	IndCellInfoList                     uint32 = 35
	IndImsNetworkStateChanged           uint32 = 36
	IndSubscriptionStatusChanged        uint32 = 37
	IndSrvccStateNotify                 uint32 = 38
	IndHardwareConfigChanged            uint32 = 39
	IndRadioCapabilityIndication        uint32 = 40
	IndOnSupplementaryServiceIndication uint32 = 41
	IndStkCallControlAlphaNotify        uint32 = 42
	IndLceData                          uint32 = 43
	IndPcoData                          uint32 = 44
	IndModemReset                       uint32 = 45

	// android.hardware.radio@1.1::IRadioIndication
	IndCarrierInfoForImsiEncryption uint32 = 46
	IndNetworkScanResult            uint32 = 47
	IndKeepaliveStatus              uint32 = 48

	// android.hardware.radio@1.2::IRadioIndication
	IndNetworkScanResult_1_2         uint32 = 49
	IndCellInfoList_1_2              uint32 = 50
	IndCurrentLinkCapacityEstimate   uint32 = 51
	IndCurrentPhysicalChannelConfigs uint32 = 52
	IndCurrentSignalStrength_1_2     uint32 = 53

	// android.hardware.radio@1.4::IRadioIndication
	IndCurrentEmergencyNumberList        uint32 = 54
	IndCellInfoList_1_4                  uint32 = 55
	IndNetworkScanResult_1_4             uint32 = 56
	IndCurrentPhysicalChannelConfigs_1_4 uint32 = 57
	IndDataCallListChanged_1_4           uint32 = 58
	IndCurrentSignalStrength_1_4         uint32 = 59
)

// android.hardware.radio.deprecated@1.0 transactions.
const (
	// IOemHook
	OemHookReqSetResponseFunctions uint32 = 1
	OemHookReqSendRequestRaw       uint32 = 2
	OemHookReqSendRequestStrings   uint32 = 3

	// IOemHookResponse
	OemHookRespSendRequestRaw     uint32 = 1
	OemHookRespSendRequestStrings uint32 = 2

	// IOemHookIndication
	OemHookIndOemHookRaw uint32 = 1
)
