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

package table

import (
	"github.com/henrylee2cn/rilbinder/radio"
	"github.com/henrylee2cn/rilbinder/ril"
)

var calls10 = []Call{
	{ril.RequestGetSimStatus, radio.ReqGetIccCardStatus, radio.RespGetIccCardStatus, "serial", "icc_card_status_1_0", "getIccCardStatus"},
	{ril.RequestEnterSimPin, radio.ReqSupplyIccPinForApp, radio.RespSupplyIccPinForApp, "strings", "int_1", "supplyIccPinForApp"},
	{ril.RequestEnterSimPuk, radio.ReqSupplyIccPukForApp, radio.RespSupplyIccPukForApp, "strings", "int_1", "supplyIccPukForApp"},
	{ril.RequestEnterSimPin2, radio.ReqSupplyIccPin2ForApp, radio.RespSupplyIccPin2ForApp, "strings", "int_1", "supplyIccPin2ForApp"},
	{ril.RequestEnterSimPuk2, radio.ReqSupplyIccPuk2ForApp, radio.RespSupplyIccPuk2ForApp, "strings", "int_1", "supplyIccPuk2ForApp"},
	{ril.RequestChangeSimPin, radio.ReqChangeIccPinForApp, radio.RespChangeIccPinForApp, "strings", "int_1", "changeIccPinForApp"},
	{ril.RequestChangeSimPin2, radio.ReqChangeIccPin2ForApp, radio.RespChangeIccPin2ForApp, "strings", "int_1", "changeIccPin2ForApp"},
	{ril.RequestEnterNetworkDepersonalization, radio.ReqSupplyNetworkDepersonalization, radio.RespSupplyNetworkDepersonalization, "strings", "int_1", "supplyNetworkDepersonalization"},
	{ril.RequestGetCurrentCalls, radio.ReqGetCurrentCalls, radio.RespGetCurrentCalls, "serial", "call_list", "getCurrentCalls"},
	{ril.RequestDial, radio.ReqDial, radio.RespDial, "dial", "", "dial"},
	{ril.RequestGetImsi, radio.ReqGetImsiForApp, radio.RespGetImsiForApp, "strings", "string", "getImsiForApp"},
	{ril.RequestHangup, radio.ReqHangup, radio.RespHangup, "ints", "", "hangup"},
	{ril.RequestHangupWaitingOrBackground, radio.ReqHangupWaitingOrBackground, radio.RespHangupWaitingOrBackground, "serial", "", "hangupWaitingOrBackground"},
	{ril.RequestHangupForegroundResumeBackground, radio.ReqHangupForegroundResumeBackground, radio.RespHangupForegroundResumeBackground, "serial", "", "hangupForegroundResumeBackground"},
	{ril.RequestSwitchWaitingOrHoldingAndActive, radio.ReqSwitchWaitingOrHoldingAndActive, radio.RespSwitchWaitingOrHoldingAndActive, "serial", "", "switchWaitingOrHoldingAndActive"},
	{ril.RequestConference, radio.ReqConference, radio.RespConference, "serial", "", "conference"},
	{ril.RequestUdub, radio.ReqRejectCall, radio.RespRejectCall, "serial", "", "rejectCall"},
	{ril.RequestLastCallFailCause, radio.ReqGetLastCallFailCause, radio.RespGetLastCallFailCause, "serial", "last_call_fail_cause", "getLastCallFailCause"},
	{ril.RequestSignalStrength, radio.ReqGetSignalStrength, radio.RespGetSignalStrength, "serial", "signal_strength", "getSignalStrength"},
	{ril.RequestVoiceRegistrationState, radio.ReqGetVoiceRegistrationState, radio.RespGetVoiceRegistrationState, "serial", "voice_reg_state", "getVoiceRegistrationState"},
	{ril.RequestDataRegistrationState, radio.ReqGetDataRegistrationState, radio.RespGetDataRegistrationState, "serial", "data_reg_state", "getDataRegistrationState"},
	{ril.RequestOperator, radio.ReqGetOperator, radio.RespGetOperator, "serial", "string_3", "getOperator"},
	{ril.RequestRadioPower, radio.ReqSetRadioPower, radio.RespSetRadioPower, "bool", "", "setRadioPower"},
	{ril.RequestDtmf, radio.ReqSendDtmf, radio.RespSendDtmf, "string", "", "sendDtmf"},
	{ril.RequestSendSms, radio.ReqSendSms, radio.RespSendSms, "gsm_sms_message", "sms_send_result", "sendSms"},
	{ril.RequestSendSmsExpectMore, radio.ReqSendSMSExpectMore, radio.RespSendSMSExpectMore, "gsm_sms_message", "sms_send_result", "sendSMSExpectMore"},
	{ril.RequestSetupDataCall, radio.ReqSetupDataCall, radio.RespSetupDataCall, "setup_data_call", "setup_data_call_result", "setupDataCall"},
	{ril.RequestSimIO, radio.ReqIccIOForApp, radio.RespIccIOForApp, "icc_io", "icc_io_result", "iccIOForApp"},
	{ril.RequestSendUssd, radio.ReqSendUssd, radio.RespSendUssd, "string", "", "sendUssd"},
	{ril.RequestCancelUssd, radio.ReqCancelPendingUssd, radio.RespCancelPendingUssd, "serial", "", "cancelPendingUssd"},
	{ril.RequestGetClir, radio.ReqGetClir, radio.RespGetClir, "serial", "int_2", "getClir"},
	{ril.RequestSetClir, radio.ReqSetClir, radio.RespSetClir, "ints", "", "setClir"},
	{ril.RequestQueryCallForwardStatus, radio.ReqGetCallForwardStatus, radio.RespGetCallForwardStatus, "call_forward_info", "call_forward_info_array", "getCallForwardStatus"},
	{ril.RequestSetCallForward, radio.ReqSetCallForward, radio.RespSetCallForward, "call_forward_info", "", "setCallForward"},
	{ril.RequestQueryCallWaiting, radio.ReqGetCallWaiting, radio.RespGetCallWaiting, "ints", "call_waiting", "getCallWaiting"},
	{ril.RequestSetCallWaiting, radio.ReqSetCallWaiting, radio.RespSetCallWaiting, "ints_to_bool_int", "", "setCallWaiting"},
	{ril.RequestSmsAcknowledge, radio.ReqAcknowledgeLastIncomingGsmSms, radio.RespAcknowledgeLastIncomingGsmSms, "ints_to_bool_int", "", "acknowledgeLastIncomingGsmSms"},
	{ril.RequestAnswer, radio.ReqAcceptCall, radio.RespAcceptCall, "serial", "", "acceptCall"},
	{ril.RequestDeactivateDataCall, radio.ReqDeactivateDataCall, radio.RespDeactivateDataCall, "deactivate_data_call", "", "deactivateDataCall"},
	{ril.RequestQueryFacilityLock, radio.ReqGetFacilityLockForApp, radio.RespGetFacilityLockForApp, "get_facility_lock", "int32", "getFacilityLockForApp"},
	{ril.RequestSetFacilityLock, radio.ReqSetFacilityLockForApp, radio.RespSetFacilityLockForApp, "set_facility_lock", "int_1", "setFacilityLockForApp"},
	{ril.RequestChangeBarringPassword, radio.ReqSetBarringPassword, radio.RespSetBarringPassword, "strings", "", "setBarringPassword"},
	{ril.RequestQueryNetworkSelectionMode, radio.ReqGetNetworkSelectionMode, radio.RespGetNetworkSelectionMode, "serial", "bool_to_int_array", "getNetworkSelectionMode"},
	{ril.RequestSetNetworkSelectionAutomatic, radio.ReqSetNetworkSelectionModeAutomatic, radio.RespSetNetworkSelectionModeAutomatic, "serial", "", "setNetworkSelectionModeAutomatic"},
	{ril.RequestSetNetworkSelectionManual, radio.ReqSetNetworkSelectionModeManual, radio.RespSetNetworkSelectionModeManual, "string", "", "setNetworkSelectionModeManual"},
	{ril.RequestQueryAvailableNetworks, radio.ReqGetAvailableNetworks, radio.RespGetAvailableNetworks, "serial", "operator_info_list", "getAvailableNetworks"},
	{ril.RequestBasebandVersion, radio.ReqGetBasebandVersion, radio.RespGetBasebandVersion, "serial", "string", "getBasebandVersion"},
	{ril.RequestSeparateConnection, radio.ReqSeparateConnection, radio.RespSeparateConnection, "ints", "", "separateConnection"},
	{ril.RequestSetMute, radio.ReqSetMute, radio.RespSetMute, "bool", "", "setMute"},
	{ril.RequestGetMute, radio.ReqGetMute, radio.RespGetMute, "serial", "bool_to_int_array", "getMute"},
	{ril.RequestQueryClip, radio.ReqGetClip, radio.RespGetClip, "serial", "int_1", "getClip"},
	{ril.RequestDataCallList, radio.ReqGetDataCallList, radio.RespGetDataCallList, "serial", "data_call_list", "getDataCallList"},
	{ril.RequestSetSuppSvcNotification, radio.ReqSetSuppServiceNotifications, radio.RespSetSuppServiceNotifications, "int", "", "setSuppServiceNotifications"},
	{ril.RequestWriteSmsToSim, radio.ReqWriteSmsToSim, radio.RespWriteSmsToSim, "sms_write_args", "int_1", "writeSmsToSim"},
	{ril.RequestDeleteSmsOnSim, radio.ReqDeleteSmsOnSim, radio.RespDeleteSmsOnSim, "ints", "", "deleteSmsOnSim"},
	{ril.RequestQueryAvailableBandMode, radio.ReqGetAvailableBandModes, radio.RespGetAvailableBandModes, "serial", "int_array", "getAvailableBandModes"},
	{ril.RequestStkSendEnvelopeCommand, radio.ReqSendEnvelope, radio.RespSendEnvelope, "string", "string", "sendEnvelope"},
	{ril.RequestStkSendTerminalResponse, radio.ReqSendTerminalResponseToSim, radio.RespSendTerminalResponseToSim, "string", "", "sendTerminalResponseToSim"},
	{ril.RequestStkHandleCallSetupRequestedFromSim, radio.ReqHandleStkCallSetupRequestFromSim, radio.RespHandleStkCallSetupRequestFromSim, "bool", "", "handleStkCallSetupRequestFromSim"},
	{ril.RequestExplicitCallTransfer, radio.ReqExplicitCallTransfer, radio.RespExplicitCallTransfer, "serial", "", "explicitCallTransfer"},
	{ril.RequestSetPreferredNetworkType, radio.ReqSetPreferredNetworkType, radio.RespSetPreferredNetworkType, "ints", "", "setPreferredNetworkType"},
	{ril.RequestGetPreferredNetworkType, radio.ReqGetPreferredNetworkType, radio.RespGetPreferredNetworkType, "serial", "pref_network_type", "getPreferredNetworkType"},
	// SCREEN_STATE has no response of its own, sendDeviceState answers it.
	{ril.RequestScreenState, radio.ReqSendDeviceState, 0, "screen_state", "", "sendDeviceState"},
	{ril.RequestSetLocationUpdates, radio.ReqSetLocationUpdates, radio.RespSetLocationUpdates, "bool", "", "setLocationUpdates"},
	{ril.RequestGsmGetBroadcastSmsConfig, radio.ReqGetGsmBroadcastConfig, radio.RespGetGsmBroadcastConfig, "serial", "gsm_broadcast_sms_config", "getGsmBroadcastConfig"},
	{ril.RequestGsmSetBroadcastSmsConfig, radio.ReqSetGsmBroadcastConfig, radio.RespSetGsmBroadcastConfig, "gsm_broadcast_sms_config", "", "setGsmBroadcastConfig"},
	{ril.RequestDeviceIdentity, radio.ReqGetDeviceIdentity, radio.RespGetDeviceIdentity, "serial", "device_identity", "getDeviceIdentity"},
	{ril.RequestGetSmscAddress, radio.ReqGetSmscAddress, radio.RespGetSmscAddress, "serial", "string", "getSmscAddress"},
	{ril.RequestSetSmscAddress, radio.ReqSetSmscAddress, radio.RespSetSmscAddress, "string", "", "setSmscAddress"},
	{ril.RequestReportStkServiceIsRunning, radio.ReqReportStkServiceIsRunning, radio.RespReportStkServiceIsRunning, "serial", "", "reportStkServiceIsRunning"},
	{ril.RequestGetCellInfoList, radio.ReqGetCellInfoList, radio.RespGetCellInfoList, "serial", "cell_info_list", "getCellInfoList"},
	{ril.RequestSetUnsolCellInfoListRate, radio.ReqSetCellInfoListRate, radio.RespSetCellInfoListRate, "ints", "", "setCellInfoListRate"},
	{ril.RequestSetInitialAttachApn, radio.ReqSetInitialAttachApn, radio.RespSetInitialAttachApn, "initial_attach_apn", "", "setInitialAttachApn"},
	{ril.RequestImsRegistrationState, radio.ReqGetImsRegistrationState, radio.RespGetImsRegistrationState, "serial", "ims_registration_state", "getImsRegistrationState"},
	{ril.RequestSimOpenChannel, radio.ReqIccOpenLogicalChannel, radio.RespIccOpenLogicalChannel, "icc_open_logical_channel", "icc_open_logical_channel", "iccOpenLogicalChannel"},
	{ril.RequestSimCloseChannel, radio.ReqIccCloseLogicalChannel, radio.RespIccCloseLogicalChannel, "ints", "", "iccCloseLogicalChannel"},
	{ril.RequestSimTransmitApduChannel, radio.ReqIccTransmitApduLogicalChannel, radio.RespIccTransmitApduLogicalChannel, "icc_transmit_apdu_logical_channel", "icc_io_result", "iccTransmitApduLogicalChannel"},
	{ril.RequestSetUiccSubscription, radio.ReqSetUiccSubscription, radio.RespSetUiccSubscription, "uicc_sub", "", "setUiccSubscription"},
	{ril.RequestAllowData, radio.ReqSetDataAllowed, radio.RespSetDataAllowed, "bool", "", "setDataAllowed"},
	{ril.RequestSetDataProfile, radio.ReqSetDataProfile, radio.RespSetDataProfile, "data_profiles", "", "setDataProfile"},
	{ril.RequestGetRadioCapability, radio.ReqGetRadioCapability, radio.RespGetRadioCapability, "serial", "radio_capability", "getRadioCapability"},
	{ril.RequestSetRadioCapability, radio.ReqSetRadioCapability, radio.RespSetRadioCapability, "radio_capability", "radio_capability", "setRadioCapability"},
	{ril.RequestSendDeviceState, radio.ReqSendDeviceState, radio.RespSendDeviceState, "device_state", "", "sendDeviceState"},
	{ril.RequestSetUnsolicitedResponseFilter, radio.ReqSetIndicationFilter, radio.RespSetIndicationFilter, "ints", "", "setIndicationFilter"},
	{ril.RequestResponseAcknowledgement, radio.ReqResponseAcknowledgement, 0, "", "", "responseAcknowledgement"},
}

var calls12 = []Call{
	{0, 0, radio.RespGetIccCardStatus_1_2, "", "icc_card_status_1_2", "getIccCardStatus_1_2"},
	{ril.RequestSetupDataCall, radio.ReqSetupDataCall_1_2, 0, "setup_data_call_1_2", "", "setupDataCall_1_2"},
	{ril.RequestDeactivateDataCall, radio.ReqDeactivateDataCall_1_2, 0, "deactivate_data_call_1_2", "", "deactivateDataCall_1_2"},
	{0, 0, radio.RespGetVoiceRegistrationState_1_2, "", "voice_reg_state_1_2", "getVoiceRegistrationState_1_2"},
	{0, 0, radio.RespGetDataRegistrationState_1_2, "", "data_reg_state_1_2", "getDataRegistrationState_1_2"},
	{0, 0, radio.RespGetCurrentCalls_1_2, "", "call_list_1_2", "getCurrentCalls_1_2"},
	{0, 0, radio.RespGetCellInfoList_1_2, "", "cell_info_list_1_2", "getCellInfoList_1_2"},
	{0, 0, radio.RespGetSignalStrength_1_2, "", "signal_strength_1_2", "getSignalStrength_1_2"},
}

var calls14 = []Call{
	{0, 0, radio.RespGetIccCardStatus_1_4, "", "icc_card_status_1_4", "getIccCardStatus_1_4"},
	{ril.RequestSetupDataCall, radio.ReqSetupDataCall_1_4, radio.RespSetupDataCall_1_4, "setup_data_call_1_4", "setup_data_call_result_1_4", "setupDataCall_1_4"},
	{0, 0, radio.RespGetDataRegistrationState_1_4, "", "data_reg_state_1_4", "getDataRegistrationState_1_4"},
	{0, 0, radio.RespGetDataCallList_1_4, "", "data_call_list_1_4", "getDataCallList_1_4"},
	{0, 0, radio.RespGetCellInfoList_1_4, "", "cell_info_list_1_4", "getCellInfoList_1_4"},
	{0, 0, radio.RespGetSignalStrength_1_4, "", "signal_strength_1_4", "getSignalStrength_1_4"},
	// A @1.4 service may answer setPreferredNetworkType with the bitmap
	// response.
	{ril.RequestSetPreferredNetworkType, 0, radio.RespSetPreferredNetworkTypeBitmap, "", "", "setPreferredNetworkTypeBitmap_1_4"},
	{0, 0, radio.RespGetPreferredNetworkTypeBitmap, "", "pref_network_type_bitmap", "getPreferredNetworkTypeBitmap_1_4"},
}

var events10 = []Event{
	{ril.UnsolRadioStateChanged, radio.IndRadioStateChanged, "int32", "radioStateChanged"},
	{ril.UnsolCallStateChanged, radio.IndCallStateChanged, "", "callStateChanged"},
	{ril.UnsolVoiceNetworkStateChanged, radio.IndNetworkStateChanged, "", "networkStateChanged"},
	{ril.UnsolNewSms, radio.IndNewSms, "byte_array_to_hex", "newSms"},
	{ril.UnsolNewSmsStatusReport, radio.IndNewSmsStatusReport, "byte_array_to_hex", "newSmsStatusReport"},
	{ril.UnsolOnUssd, radio.IndOnUssd, "ussd", "onUssd"},
	{ril.UnsolNitzTimeReceived, radio.IndNitzTimeReceived, "string", "nitzTimeReceived"},
	{ril.UnsolSignalStrength, radio.IndCurrentSignalStrength, "signal_strength", "currentSignalStrength"},
	{ril.UnsolDataCallListChanged, radio.IndDataCallListChanged, "data_call_list", "dataCallListChanged"},
	{ril.UnsolSuppSvcNotification, radio.IndSuppSvcNotify, "supp_svc_notification", "suppSvcNotify"},
	{ril.UnsolStkSessionEnd, radio.IndStkSessionEnd, "", "stkSessionEnd"},
	{ril.UnsolStkProactiveCommand, radio.IndStkProactiveCommand, "string", "stkProactiveCommand"},
	{ril.UnsolStkEventNotify, radio.IndStkEventNotify, "string", "stkEventNotify"},
	{ril.UnsolSimRefresh, radio.IndSimRefresh, "sim_refresh", "simRefresh"},
	{ril.UnsolCallRing, radio.IndCallRing, "", "callRing"},
	{ril.UnsolSimStatusChanged, radio.IndSimStatusChanged, "", "simStatusChanged"},
	{ril.UnsolNewBroadcastSms, radio.IndNewBroadcastSms, "byte_array", "newBroadcastSms"},
	{ril.UnsolRingbackTone, radio.IndIndicateRingbackTone, "bool_to_int_array", "indicateRingbackTone"},
	{ril.UnsolVoiceRadioTechChanged, radio.IndVoiceRadioTechChanged, "int32", "voiceRadioTechChanged"},
	{ril.UnsolCellInfoList, radio.IndCellInfoList, "cell_info_list", "cellInfoList"},
	{ril.UnsolImsNetworkStateChanged, radio.IndImsNetworkStateChanged, "", "imsNetworkStateChanged"},
	{ril.UnsolUiccSubscriptionStatusChanged, radio.IndSubscriptionStatusChanged, "bool_to_int_array", "subscriptionStatusChanged"},
}

var events12 = []Event{
	{ril.UnsolCellInfoList, radio.IndCellInfoList_1_2, "cell_info_list_1_2", "cellInfoList_1_2"},
	{ril.UnsolSignalStrength, radio.IndCurrentSignalStrength_1_2, "signal_strength_1_2", "currentSignalStrength_1_2"},
}

var events14 = []Event{
	{ril.UnsolCellInfoList, radio.IndCellInfoList_1_4, "cell_info_list_1_4", "cellInfoList_1_4"},
	{ril.UnsolDataCallListChanged, radio.IndDataCallListChanged_1_4, "data_call_list_1_4", "dataCallListChanged_1_4"},
	{ril.UnsolSignalStrength, radio.IndCurrentSignalStrength_1_4, "signal_strength_1_4", "currentSignalStrength_1_4"},
}
