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

package codec

import (
	"encoding/binary"

	"github.com/henrylee2cn/rilbinder/hidl"
	"github.com/henrylee2cn/rilbinder/radio"
	"github.com/henrylee2cn/rilbinder/wire"
)

// maxSignalStrength is the highest valid TS 27.007 8.5 signal level,
// 99 meaning unknown.
const maxSignalStrength = 31

// writeSignalStrength writes RIL_SignalStrength_v10. wcdma is nil for
// @1.0, where the GSM field is the only GW reading.
func writeSignalStrength(gsm, cdma, evdo, lte *hidl.Struct, tdRscp uint32, wcdma *hidl.Struct, out *wire.Writer) {
	if wcdma != nil && wcdma.Int32("signalStrength") <= maxSignalStrength &&
		gsm.Uint32("signalStrength") > maxSignalStrength {
		// a HAL that reports 3G only in the wcdma field
		out.AppendInt32(wcdma.Int32("signalStrength"))
		out.AppendInt32(wcdma.Int32("bitErrorRate"))
	} else {
		out.AppendUint32(gsm.Uint32("signalStrength"))
		out.AppendUint32(gsm.Uint32("bitErrorRate"))
	}

	out.AppendUint32(cdma.Uint32("dbm"))
	out.AppendUint32(cdma.Uint32("ecio"))

	out.AppendUint32(evdo.Uint32("dbm"))
	out.AppendUint32(evdo.Uint32("ecio"))
	out.AppendUint32(evdo.Uint32("signalNoiseRatio"))

	out.AppendUint32(lte.Uint32("signalStrength"))
	out.AppendUint32(lte.Uint32("rsrp"))
	out.AppendUint32(lte.Uint32("rsrq"))
	out.AppendInt32(lte.Int32("rssnr"))
	out.AppendUint32(lte.Uint32("cqi"))
	out.AppendUint32(lte.Uint32("timingAdvance"))

	out.AppendUint32(tdRscp)
}

// DecodeSignalStrength writes a SignalStrength.
func DecodeSignalStrength(r *hidl.Reader, out *wire.Writer) error {
	s, err := r.ReadStruct(radio.SignalStrengthShape)
	if err != nil {
		return err
	}
	writeSignalStrength(s.Struct("gw"), s.Struct("cdma"), s.Struct("evdo"), s.Struct("lte"),
		s.Struct("tdScdma").Uint32("rscp"), nil, out)
	return nil
}

// DecodeSignalStrength12 writes a SignalStrength_1_2.
func DecodeSignalStrength12(r *hidl.Reader, out *wire.Writer) error {
	s, err := r.ReadStruct(radio.SignalStrength12Shape)
	if err != nil {
		return err
	}
	writeSignalStrength(s.Struct("gsm"), s.Struct("cdma"), s.Struct("evdo"), s.Struct("lte"),
		s.Struct("tdScdma").Uint32("rscp"), s.Struct("wcdma").Struct("base"), out)
	return nil
}

// DecodeSignalStrength14 writes a SignalStrength_1_4. NR is dropped.
func DecodeSignalStrength14(r *hidl.Reader, out *wire.Writer) error {
	s, err := r.ReadStruct(radio.SignalStrength14Shape)
	if err != nil {
		return err
	}
	writeSignalStrength(s.Struct("gsm"), s.Struct("cdma"), s.Struct("evdo"), s.Struct("lte"),
		s.Struct("tdscdma").Uint32("rscp"), s.Struct("wcdma").Struct("base"), out)
	return nil
}

// cellNumber parses an MCC or MNC, CellInvalidValue if it does not parse.
func cellNumber(s string) int32 {
	if v, ok := ParseInt(s); ok {
		return v
	}
	return CellInvalidValue
}

func writeCellHeader(typ int32, registered bool, stampType int32, stamp int64, out *wire.Writer) {
	out.AppendInt32(typ)
	out.AppendInt32(boolInt(registered))
	out.AppendInt32(stampType)
	out.AppendBytes(binary.LittleEndian.AppendUint64(nil, uint64(stamp)))
}

func writeGsmCell(id, ss *hidl.Struct, out *wire.Writer) {
	out.AppendInt32(cellNumber(id.Str("mcc")))
	out.AppendInt32(cellNumber(id.Str("mnc")))
	out.AppendInt32(id.Int32("lac"))
	out.AppendInt32(id.Int32("cid"))
	out.AppendInt32(id.Int32("arfcn"))
	out.AppendInt32(id.Int32("bsic"))
	out.AppendUint32(ss.Uint32("signalStrength"))
	out.AppendUint32(ss.Uint32("bitErrorRate"))
	out.AppendInt32(ss.Int32("timingAdvance"))
}

func writeCdmaCell(id, ss, evdo *hidl.Struct, out *wire.Writer) {
	out.AppendInt32(id.Int32("networkId"))
	out.AppendInt32(id.Int32("systemId"))
	out.AppendInt32(id.Int32("baseStationId"))
	out.AppendInt32(id.Int32("longitude"))
	out.AppendInt32(id.Int32("latitude"))
	out.AppendUint32(ss.Uint32("dbm"))
	out.AppendUint32(ss.Uint32("ecio"))
	out.AppendUint32(evdo.Uint32("dbm"))
	out.AppendUint32(evdo.Uint32("ecio"))
	out.AppendUint32(evdo.Uint32("signalNoiseRatio"))
}

func writeLteCell(id, ss *hidl.Struct, out *wire.Writer) {
	out.AppendInt32(cellNumber(id.Str("mcc")))
	out.AppendInt32(cellNumber(id.Str("mnc")))
	out.AppendInt32(id.Int32("ci"))
	out.AppendInt32(id.Int32("pci"))
	out.AppendInt32(id.Int32("tac"))
	out.AppendInt32(id.Int32("earfcn"))
	out.AppendUint32(ss.Uint32("signalStrength"))
	out.AppendUint32(ss.Uint32("rsrp"))
	out.AppendUint32(ss.Uint32("rsrq"))
	out.AppendInt32(ss.Int32("rssnr"))
	out.AppendUint32(ss.Uint32("cqi"))
	out.AppendUint32(ss.Uint32("timingAdvance"))
}

func writeWcdmaCell(id, ss *hidl.Struct, out *wire.Writer) {
	out.AppendInt32(cellNumber(id.Str("mcc")))
	out.AppendInt32(cellNumber(id.Str("mnc")))
	out.AppendInt32(id.Int32("lac"))
	out.AppendInt32(id.Int32("cid"))
	out.AppendInt32(id.Int32("psc"))
	out.AppendInt32(id.Int32("uarfcn"))
	out.AppendInt32(ss.Int32("signalStrength"))
	out.AppendInt32(ss.Int32("bitErrorRate"))
}

func writeTdscdmaCell(id *hidl.Struct, rscp uint32, out *wire.Writer) {
	out.AppendInt32(cellNumber(id.Str("mcc")))
	out.AppendInt32(cellNumber(id.Str("mnc")))
	out.AppendInt32(id.Int32("lac"))
	out.AppendInt32(id.Int32("cid"))
	out.AppendInt32(id.Int32("cpid"))
	out.AppendUint32(rscp)
}

// writeCell writes the body of a @1.0 CellInfoXxx element.
func writeCell(typ int32, c *hidl.Struct, out *wire.Writer) {
	switch typ {
	case radio.CellInfoTypeGsm:
		writeGsmCell(c.Struct("cellIdentityGsm"), c.Struct("signalStrengthGsm"), out)
	case radio.CellInfoTypeCdma:
		writeCdmaCell(c.Struct("cellIdentityCdma"), c.Struct("signalStrengthCdma"), c.Struct("signalStrengthEvdo"), out)
	case radio.CellInfoTypeLte:
		writeLteCell(c.Struct("cellIdentityLte"), c.Struct("signalStrengthLte"), out)
	case radio.CellInfoTypeWcdma:
		writeWcdmaCell(c.Struct("cellIdentityWcdma"), c.Struct("signalStrengthWcdma"), out)
	case radio.CellInfoTypeTdscdma:
		writeTdscdmaCell(c.Struct("cellIdentityTdscdma"), c.Struct("signalStrengthTdscdma").Uint32("rscp"), out)
	}
}

// writeCell12 writes the body of a @1.2 CellInfoXxx element.
func writeCell12(typ int32, c *hidl.Struct, out *wire.Writer) {
	switch typ {
	case radio.CellInfoTypeGsm:
		writeGsmCell(c.Struct("cellIdentityGsm").Struct("base"), c.Struct("signalStrengthGsm"), out)
	case radio.CellInfoTypeCdma:
		writeCdmaCell(c.Struct("cellIdentityCdma").Struct("base"), c.Struct("signalStrengthCdma"), c.Struct("signalStrengthEvdo"), out)
	case radio.CellInfoTypeLte:
		writeLteCell(c.Struct("cellIdentityLte").Struct("base"), c.Struct("signalStrengthLte"), out)
	case radio.CellInfoTypeWcdma:
		writeWcdmaCell(c.Struct("cellIdentityWcdma").Struct("base"), c.Struct("signalStrengthWcdma").Struct("base"), out)
	case radio.CellInfoTypeTdscdma:
		writeTdscdmaCell(c.Struct("cellIdentityTdscdma").Struct("base"), c.Struct("signalStrengthTdscdma").Uint32("rscp"), out)
	}
}

// cellVecs names the CellInfo vector holding each cell type.
var cellVecs = map[int32]string{
	radio.CellInfoTypeGsm:     "gsm",
	radio.CellInfoTypeCdma:    "cdma",
	radio.CellInfoTypeLte:     "lte",
	radio.CellInfoTypeWcdma:   "wcdma",
	radio.CellInfoTypeTdscdma: "tdscdma",
}

func cellInfoListDecoder(shape *hidl.Shape, write func(int32, *hidl.Struct, *wire.Writer)) Decoder {
	return func(r *hidl.Reader, out *wire.Writer) error {
		cells, err := r.ReadStructVec(shape)
		if err != nil {
			return err
		}
		var n int
		for _, cell := range cells {
			if vec, ok := cellVecs[cell.Int32("cellInfoType")]; ok {
				n += len(cell.Structs(vec))
			}
		}
		out.AppendInt32(int32(n))
		for _, cell := range cells {
			typ := cell.Int32("cellInfoType")
			vec, ok := cellVecs[typ]
			if !ok {
				continue
			}
			for _, c := range cell.Structs(vec) {
				writeCellHeader(typ, cell.Bool("registered"), cell.Int32("timeStampType"), cell.Int("timeStamp"), out)
				write(typ, c, out)
			}
		}
		return nil
	}
}

// Cell info list decoders for @1.0 and @1.2. Every cell is written with
// its own RIL_CellInfo_v12 header.
var (
	DecodeCellInfoList   = cellInfoListDecoder(radio.CellInfoShape, writeCell)
	DecodeCellInfoList12 = cellInfoListDecoder(radio.CellInfo12Shape, writeCell12)
)

// cell14Types maps the CellInfo_1_4 union members to @1.0 cell types.
// NR cells have no legacy representation.
var cell14Types = map[uint8]int32{
	radio.CellInfo14Gsm:     radio.CellInfoTypeGsm,
	radio.CellInfo14Cdma:    radio.CellInfoTypeCdma,
	radio.CellInfo14Wcdma:   radio.CellInfoTypeWcdma,
	radio.CellInfo14Tdscdma: radio.CellInfoTypeTdscdma,
	radio.CellInfo14Lte:     radio.CellInfoTypeLte,
}

// DecodeCellInfoList14 writes vec<CellInfo_1_4>, skipping NR cells.
// @1.4 carries no time stamp, zero is written instead.
func DecodeCellInfoList14(r *hidl.Reader, out *wire.Writer) error {
	cells, err := r.ReadStructVec(radio.CellInfo14Shape)
	if err != nil {
		return err
	}
	var n int32
	for _, cell := range cells {
		if _, ok := cell14Types[cell.Union("info").Tag]; ok {
			n++
		}
	}
	out.AppendInt32(n)
	for _, cell := range cells {
		info := cell.Union("info")
		typ, ok := cell14Types[info.Tag]
		if !ok {
			continue
		}
		writeCellHeader(typ, cell.Bool("isRegistered"), 0, 0, out)
		c := info.Value
		if info.Tag == radio.CellInfo14Lte {
			c = c.Struct("base")
		}
		writeCell12(typ, c, out)
	}
	return nil
}
