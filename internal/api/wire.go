package api

import (
	"google.golang.org/protobuf/encoding/protowire"
)

// Field helpers follow proto3 rules: zero values are not written and
// unknown fields are skipped on read.

func appendString(b []byte, num protowire.Number, v string) []byte {
	if v == "" {
		return b
	}
	b = protowire.AppendTag(b, num, protowire.BytesType)
	return protowire.AppendString(b, v)
}

func appendBytes(b []byte, num protowire.Number, v []byte) []byte {
	if len(v) == 0 {
		return b
	}
	b = protowire.AppendTag(b, num, protowire.BytesType)
	return protowire.AppendBytes(b, v)
}

func appendInt64(b []byte, num protowire.Number, v int64) []byte {
	if v == 0 {
		return b
	}
	b = protowire.AppendTag(b, num, protowire.VarintType)
	return protowire.AppendVarint(b, uint64(v))
}

func appendBool(b []byte, num protowire.Number, v bool) []byte {
	if !v {
		return b
	}
	b = protowire.AppendTag(b, num, protowire.VarintType)
	return protowire.AppendVarint(b, protowire.EncodeBool(v))
}

func appendMessage(b []byte, num protowire.Number, m wireMessage) []byte {
	b = protowire.AppendTag(b, num, protowire.BytesType)
	return protowire.AppendBytes(b, m.appendWire(nil))
}

// readFields walks b and hands every field to fn. fn returns the number of
// bytes it consumed, or 0 to skip a field it does not know.
func readFields(b []byte, fn func(num protowire.Number, typ protowire.Type, v []byte) (int, error)) error {
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return protowire.ParseError(n)
		}
		b = b[n:]

		m, err := fn(num, typ, b)
		if err != nil {
			return err
		}
		if m == 0 {
			m = protowire.ConsumeFieldValue(num, typ, b)
		}
		if m < 0 {
			return protowire.ParseError(m)
		}
		b = b[m:]
	}
	return nil
}

func readString(typ protowire.Type, v []byte, dst *string) int {
	if typ != protowire.BytesType {
		return 0
	}
	s, n := protowire.ConsumeString(v)
	if n >= 0 {
		*dst = s
	}
	return n
}

func readBytes(typ protowire.Type, v []byte, dst *[]byte) int {
	if typ != protowire.BytesType {
		return 0
	}
	s, n := protowire.ConsumeBytes(v)
	if n >= 0 {
		*dst = append([]byte(nil), s...)
	}
	return n
}

func readInt64(typ protowire.Type, v []byte, dst *int64) int {
	if typ != protowire.VarintType {
		return 0
	}
	x, n := protowire.ConsumeVarint(v)
	if n >= 0 {
		*dst = int64(x)
	}
	return n
}

func readBool(typ protowire.Type, v []byte, dst *bool) int {
	if typ != protowire.VarintType {
		return 0
	}
	x, n := protowire.ConsumeVarint(v)
	if n >= 0 {
		*dst = protowire.DecodeBool(x)
	}
	return n
}

func readMessage(typ protowire.Type, v []byte, m wireMessage) (int, error) {
	if typ != protowire.BytesType {
		return 0, nil
	}
	s, n := protowire.ConsumeBytes(v)
	if n < 0 {
		return n, nil
	}
	return n, m.readWire(s)
}

func (m *PingRequest) appendWire(b []byte) []byte { return b }
func (m *PingRequest) readWire(b []byte) error {
	return readFields(b, func(protowire.Number, protowire.Type, []byte) (int, error) { return 0, nil })
}

func (m *PingResponse) appendWire(b []byte) []byte {
	return appendString(b, 1, m.Status)
}

func (m *PingResponse) readWire(b []byte) error {
	return readFields(b, func(num protowire.Number, typ protowire.Type, v []byte) (int, error) {
		if num == 1 {
			return readString(typ, v, &m.Status), nil
		}
		return 0, nil
	})
}

func (m *RegisterRequest) appendWire(b []byte) []byte {
	b = appendString(b, 1, m.Phone)
	return appendString(b, 2, m.Password)
}

func (m *RegisterRequest) readWire(b []byte) error {
	return readFields(b, func(num protowire.Number, typ protowire.Type, v []byte) (int, error) {
		switch num {
		case 1:
			return readString(typ, v, &m.Phone), nil
		case 2:
			return readString(typ, v, &m.Password), nil
		}
		return 0, nil
	})
}

func (m *RegisterResponse) appendWire(b []byte) []byte {
	b = appendInt64(b, 1, m.AccountID)
	b = appendString(b, 2, m.RecoveryID)
	return appendString(b, 3, m.AccessToken)
}

func (m *RegisterResponse) readWire(b []byte) error {
	return readFields(b, func(num protowire.Number, typ protowire.Type, v []byte) (int, error) {
		switch num {
		case 1:
			return readInt64(typ, v, &m.AccountID), nil
		case 2:
			return readString(typ, v, &m.RecoveryID), nil
		case 3:
			return readString(typ, v, &m.AccessToken), nil
		}
		return 0, nil
	})
}

func (m *LoginRequest) appendWire(b []byte) []byte {
	b = appendString(b, 1, m.Phone)
	return appendString(b, 2, m.Password)
}

func (m *LoginRequest) readWire(b []byte) error {
	return readFields(b, func(num protowire.Number, typ protowire.Type, v []byte) (int, error) {
		switch num {
		case 1:
			return readString(typ, v, &m.Phone), nil
		case 2:
			return readString(typ, v, &m.Password), nil
		}
		return 0, nil
	})
}

func (m *LoginResponse) appendWire(b []byte) []byte {
	b = appendInt64(b, 1, m.AccountID)
	return appendString(b, 2, m.AccessToken)
}

func (m *LoginResponse) readWire(b []byte) error {
	return readFields(b, func(num protowire.Number, typ protowire.Type, v []byte) (int, error) {
		switch num {
		case 1:
			return readInt64(typ, v, &m.AccountID), nil
		case 2:
			return readString(typ, v, &m.AccessToken), nil
		}
		return 0, nil
	})
}

func (m *RecoverRequest) appendWire(b []byte) []byte {
	return appendString(b, 1, m.RecoveryID)
}

func (m *RecoverRequest) readWire(b []byte) error {
	return readFields(b, func(num protowire.Number, typ protowire.Type, v []byte) (int, error) {
		if num == 1 {
			return readString(typ, v, &m.RecoveryID), nil
		}
		return 0, nil
	})
}

func (m *RecoverResponse) appendWire(b []byte) []byte {
	b = appendString(b, 1, m.Phone)
	return appendString(b, 2, m.Password)
}

func (m *RecoverResponse) readWire(b []byte) error {
	return readFields(b, func(num protowire.Number, typ protowire.Type, v []byte) (int, error) {
		switch num {
		case 1:
			return readString(typ, v, &m.Phone), nil
		case 2:
			return readString(typ, v, &m.Password), nil
		}
		return 0, nil
	})
}

func (m *Account) appendWire(b []byte) []byte {
	b = appendInt64(b, 1, m.ID)
	b = appendString(b, 2, m.Username)
	b = appendString(b, 3, m.Phone)
	return appendBool(b, 4, m.Primary)
}

func (m *Account) readWire(b []byte) error {
	return readFields(b, func(num protowire.Number, typ protowire.Type, v []byte) (int, error) {
		switch num {
		case 1:
			return readInt64(typ, v, &m.ID), nil
		case 2:
			return readString(typ, v, &m.Username), nil
		case 3:
			return readString(typ, v, &m.Phone), nil
		case 4:
			return readBool(typ, v, &m.Primary), nil
		}
		return 0, nil
	})
}

func (m *ListGroupRequest) appendWire(b []byte) []byte { return b }
func (m *ListGroupRequest) readWire(b []byte) error {
	return readFields(b, func(protowire.Number, protowire.Type, []byte) (int, error) { return 0, nil })
}

func (m *ListGroupResponse) appendWire(b []byte) []byte {
	b = appendString(b, 1, m.LinkedPhone)
	b = appendString(b, 2, m.RecoveryID)
	for _, a := range m.Members {
		if a != nil {
			b = appendMessage(b, 3, a)
		}
	}
	return b
}

func (m *ListGroupResponse) readWire(b []byte) error {
	return readFields(b, func(num protowire.Number, typ protowire.Type, v []byte) (int, error) {
		switch num {
		case 1:
			return readString(typ, v, &m.LinkedPhone), nil
		case 2:
			return readString(typ, v, &m.RecoveryID), nil
		case 3:
			a := &Account{}
			n, err := readMessage(typ, v, a)
			if n > 0 && err == nil {
				m.Members = append(m.Members, a)
			}
			return n, err
		}
		return 0, nil
	})
}

func (m *AddMemberRequest) appendWire(b []byte) []byte {
	return appendString(b, 1, m.Username)
}

func (m *AddMemberRequest) readWire(b []byte) error {
	return readFields(b, func(num protowire.Number, typ protowire.Type, v []byte) (int, error) {
		if num == 1 {
			return readString(typ, v, &m.Username), nil
		}
		return 0, nil
	})
}

func (m *AddMemberResponse) appendWire(b []byte) []byte {
	if m.Member == nil {
		return b
	}
	return appendMessage(b, 1, m.Member)
}

func (m *AddMemberResponse) readWire(b []byte) error {
	return readFields(b, func(num protowire.Number, typ protowire.Type, v []byte) (int, error) {
		if num == 1 {
			m.Member = &Account{}
			return readMessage(typ, v, m.Member)
		}
		return 0, nil
	})
}

func (m *RemoveMemberRequest) appendWire(b []byte) []byte {
	return appendInt64(b, 1, m.MemberID)
}

func (m *RemoveMemberRequest) readWire(b []byte) error {
	return readFields(b, func(num protowire.Number, typ protowire.Type, v []byte) (int, error) {
		if num == 1 {
			return readInt64(typ, v, &m.MemberID), nil
		}
		return 0, nil
	})
}

func (m *RemoveMemberResponse) appendWire(b []byte) []byte { return b }
func (m *RemoveMemberResponse) readWire(b []byte) error {
	return readFields(b, func(protowire.Number, protowire.Type, []byte) (int, error) { return 0, nil })
}

func (m *Report) appendWire(b []byte) []byte {
	b = appendInt64(b, 1, m.ID)
	b = appendInt64(b, 2, m.AccountID)
	b = appendString(b, 3, m.FileName)
	return appendString(b, 4, m.Description)
}

func (m *Report) readWire(b []byte) error {
	return readFields(b, func(num protowire.Number, typ protowire.Type, v []byte) (int, error) {
		switch num {
		case 1:
			return readInt64(typ, v, &m.ID), nil
		case 2:
			return readInt64(typ, v, &m.AccountID), nil
		case 3:
			return readString(typ, v, &m.FileName), nil
		case 4:
			return readString(typ, v, &m.Description), nil
		}
		return 0, nil
	})
}

func (m *UploadReportRequest) appendWire(b []byte) []byte {
	b = appendInt64(b, 1, m.AccountID)
	b = appendString(b, 2, m.FileName)
	b = appendString(b, 3, m.Description)
	return appendBytes(b, 4, m.Content)
}

func (m *UploadReportRequest) readWire(b []byte) error {
	return readFields(b, func(num protowire.Number, typ protowire.Type, v []byte) (int, error) {
		switch num {
		case 1:
			return readInt64(typ, v, &m.AccountID), nil
		case 2:
			return readString(typ, v, &m.FileName), nil
		case 3:
			return readString(typ, v, &m.Description), nil
		case 4:
			return readBytes(typ, v, &m.Content), nil
		}
		return 0, nil
	})
}

func (m *UploadReportResponse) appendWire(b []byte) []byte {
	if m.Report == nil {
		return b
	}
	return appendMessage(b, 1, m.Report)
}

func (m *UploadReportResponse) readWire(b []byte) error {
	return readFields(b, func(num protowire.Number, typ protowire.Type, v []byte) (int, error) {
		if num == 1 {
			m.Report = &Report{}
			return readMessage(typ, v, m.Report)
		}
		return 0, nil
	})
}

func (m *ListReportsRequest) appendWire(b []byte) []byte {
	return appendInt64(b, 1, m.AccountID)
}

func (m *ListReportsRequest) readWire(b []byte) error {
	return readFields(b, func(num protowire.Number, typ protowire.Type, v []byte) (int, error) {
		if num == 1 {
			return readInt64(typ, v, &m.AccountID), nil
		}
		return 0, nil
	})
}

func (m *ListReportsResponse) appendWire(b []byte) []byte {
	for _, r := range m.Reports {
		if r != nil {
			b = appendMessage(b, 1, r)
		}
	}
	return b
}

func (m *ListReportsResponse) readWire(b []byte) error {
	return readFields(b, func(num protowire.Number, typ protowire.Type, v []byte) (int, error) {
		if num == 1 {
			r := &Report{}
			n, err := readMessage(typ, v, r)
			if n > 0 && err == nil {
				m.Reports = append(m.Reports, r)
			}
			return n, err
		}
		return 0, nil
	})
}

func (m *DownloadReportRequest) appendWire(b []byte) []byte {
	b = appendInt64(b, 1, m.ReportID)
	return appendBool(b, 2, m.PresignedURL)
}

func (m *DownloadReportRequest) readWire(b []byte) error {
	return readFields(b, func(num protowire.Number, typ protowire.Type, v []byte) (int, error) {
		switch num {
		case 1:
			return readInt64(typ, v, &m.ReportID), nil
		case 2:
			return readBool(typ, v, &m.PresignedURL), nil
		}
		return 0, nil
	})
}

func (m *DownloadReportResponse) appendWire(b []byte) []byte {
	if m.Report != nil {
		b = appendMessage(b, 1, m.Report)
	}
	b = appendBytes(b, 2, m.Content)
	return appendString(b, 3, m.URL)
}

func (m *DownloadReportResponse) readWire(b []byte) error {
	return readFields(b, func(num protowire.Number, typ protowire.Type, v []byte) (int, error) {
		switch num {
		case 1:
			m.Report = &Report{}
			return readMessage(typ, v, m.Report)
		case 2:
			return readBytes(typ, v, &m.Content), nil
		case 3:
			return readString(typ, v, &m.URL), nil
		}
		return 0, nil
	})
}

func (m *DeleteReportRequest) appendWire(b []byte) []byte {
	return appendInt64(b, 1, m.ReportID)
}

func (m *DeleteReportRequest) readWire(b []byte) error {
	return readFields(b, func(num protowire.Number, typ protowire.Type, v []byte) (int, error) {
		if num == 1 {
			return readInt64(typ, v, &m.ReportID), nil
		}
		return 0, nil
	})
}

func (m *DeleteReportResponse) appendWire(b []byte) []byte {
	return appendInt64(b, 1, m.AccountID)
}

func (m *DeleteReportResponse) readWire(b []byte) error {
	return readFields(b, func(num protowire.Number, typ protowire.Type, v []byte) (int, error) {
		if num == 1 {
			return readInt64(typ, v, &m.AccountID), nil
		}
		return 0, nil
	})
}
