package dispatch

import (
	"fmt"
	"strings"

	"dispatch/internal/incident"
	"dispatch/internal/parse"
	"dispatch/internal/phone"
	"dispatch/internal/prompt"
	"dispatch/internal/zone"
)

// 文档注释：从终端读取一次事故
// 背景：坐标输入非法时重新提问；电话与类型为可选项，空行表示未提供；maskApplicant 为 true 时申请人号码经 phone.Mask 格式化。
// 约束：输入提前结束时返回 prompt.ErrNoInput。
func ReadIncident(p *prompt.Prompter, maskApplicant bool) (incident.Incident, error) {
	at, err := prompt.AskUntil(p, "Enter an accident coordinates:", parse.Coordinates)
	if err != nil {
		return incident.Incident{}, err
	}
	if _, err := fmt.Fprintln(p.Out(), "Enter the accident info:"); err != nil {
		return incident.Incident{}, err
	}
	desc, err := p.Ask("Enter description:")
	if err != nil {
		return incident.Incident{}, err
	}
	applicant, err := p.AskOptional("Enter phone number:")
	if err != nil {
		return incident.Incident{}, err
	}
	if applicant != nil && maskApplicant {
		masked := phone.Mask(*applicant)
		applicant = &masked
	}
	typ, err := prompt.AskUntil(p, "Enter type:", optionalType)
	if err != nil {
		return incident.Incident{}, err
	}
	return incident.New(at, desc, applicant, typ), nil
}

func optionalType(s string) (*incident.Type, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	t, err := incident.ParseType(s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// 文档注释：从终端读取单个区域
// 背景：先读形状参数文本，再读形状类型，随后按类型解析参数；电话经 phone.Mask 格式化。
// 约束：参数与类型不匹配时直接返回错误，不重新提问（参数已在类型之前输入）。
func ReadZone(p *prompt.Prompter) (zone.Zone, error) {
	params, err := p.Ask("Enter zone parameters:")
	if err != nil {
		return zone.Zone{}, err
	}
	kind, err := prompt.AskUntil(p, "Enter the shape of area:", zone.ParseShapeKind)
	if err != nil {
		return zone.Zone{}, err
	}
	shape, err := parse.Shape(kind, params)
	if err != nil {
		return zone.Zone{}, err
	}
	if _, err := fmt.Fprintln(p.Out(), "Enter the zone info:"); err != nil {
		return zone.Zone{}, err
	}
	z := zone.Zone{Shape: shape}
	number, err := p.Ask("Enter phone number:")
	if err != nil {
		return zone.Zone{}, err
	}
	z.Phone = phone.Mask(number)
	if z.Name, err = p.Ask("Enter name:"); err != nil {
		return zone.Zone{}, err
	}
	if z.DeptCode, err = p.Ask("Enter emergency dept:"); err != nil {
		return zone.Zone{}, err
	}
	if z.Danger, err = prompt.AskUntil(p, "Enter danger level:", zone.ParseDangerLevel); err != nil {
		return zone.Zone{}, err
	}
	return z, nil
}
