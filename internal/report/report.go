// 包 report：把事故、区域与定位结果格式化为终端输出文本
package report

import (
	"errors"
	"fmt"
	"strings"

	"dispatch/internal/incident"
	"dispatch/internal/locate"
	"dispatch/internal/zone"
)

const na = "N/A"

func Incident(inc incident.Incident) string {
	phone := na
	if inc.Phone != nil && *inc.Phone != "" {
		phone = *inc.Phone
	}
	typ := na
	if inc.Type != nil {
		typ = string(*inc.Type)
	}
	var b strings.Builder
	b.WriteString("The accident info:\n")
	fmt.Fprintf(&b, "  Description: %s\n", inc.Description)
	fmt.Fprintf(&b, "  Phone number: %s\n", phone)
	fmt.Fprintf(&b, "  Type: %s", typ)
	return b.String()
}

func Zone(z zone.Zone) string {
	var b strings.Builder
	b.WriteString("The zone info:\n")
	fmt.Fprintf(&b, "  The shape of area: %s\n", z.Shape.Kind())
	fmt.Fprintf(&b, "  Phone number: %s\n", z.Phone)
	fmt.Fprintf(&b, "  Name: %s\n", z.Name)
	fmt.Fprintf(&b, "  Emergency dept: %s\n", z.DeptCode)
	fmt.Fprintf(&b, "  Danger level: %s", z.Danger)
	return b.String()
}

// 文档注释：城市定位结论
// 背景：命中时输出所在区域；未命中时输出最近区域；区域列表为空时输出无可用区域（对应 ErrEmptyZoneList）。
func Outcome(res locate.Result, err error) string {
	if errors.Is(err, locate.ErrEmptyZoneList) {
		return "The incident didn't match with any zone, and no nearest zone found."
	}
	if err != nil {
		return fmt.Sprintf("The incident could not be located: %v", err)
	}
	switch res.Outcome {
	case locate.Matched:
		return fmt.Sprintf("The incident is in the %s\n%s", res.Zone.Name, Zone(res.Zone))
	case locate.Nearest:
		return fmt.Sprintf("The incident didn't match with any zone.\nThe nearest zone is %s\n%s", res.Zone.Name, Zone(res.Zone))
	}
	return fmt.Sprintf("The incident is not in the %s", res.Zone.Name)
}

// City 城市模式完整报告：城市信息 + 事故信息 + 定位结论
func City(city locate.City, inc incident.Incident, res locate.Result, err error) string {
	var b strings.Builder
	b.WriteString("The city info:\n")
	fmt.Fprintf(&b, "  Name: %s\n", city.Name)
	fmt.Fprintf(&b, "  The common number: %s\n", city.CommonNumber)
	b.WriteString("\n")
	b.WriteString(Incident(inc))
	b.WriteString("\n\n")
	b.WriteString(Outcome(res, err))
	return b.String()
}

// Direct 单区域模式报告；未命中时提示转接公共号码 fallback
func Direct(z zone.Zone, inc incident.Incident, res locate.Result, fallback string) string {
	var b strings.Builder
	if res.Outcome == locate.Matched {
		fmt.Fprintf(&b, "An accident is in %s\n", z.Name)
	} else {
		fmt.Fprintf(&b, "An accident is not in %s\n", z.Name)
		fmt.Fprintf(&b, "Switch the applicant to the common number: %s\n", fallback)
	}
	zonePhone := z.Phone
	if zonePhone == "" {
		zonePhone = na
	}
	applicant := na
	if inc.Phone != nil && *inc.Phone != "" {
		applicant = *inc.Phone
	}
	fmt.Fprintf(&b, "Zone phone number: %s\n", zonePhone)
	fmt.Fprintf(&b, "Applicant number: %s", applicant)
	return b.String()
}
