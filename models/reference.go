package models

// Справочники организации. Значения согласованы с клиентскими формами
// и с раскраской экспорта, поэтому живут рядом с моделями, а не в конфиге.

const CompanyName = "Đồng Tiến Bakery"

// ChairColors — цвет строки в Excel по председательствующему.
// Ключ — точная метка из поля Chair.
var ChairColors = map[string]string{
	"TGĐ":            "#fcba03",
	"CEO":            "#FF9999",
	"COO":            "#99CCFF",
	"GS.XD":          "#CCFF99",
	"TPQC":           "#FFFF99",
	"PPNSĐT":         "#FFCC99",
	"CV.BGĐ":         "#CC99FF",
	"ITPM_N.Nguyên":  "#99FFFF",
	"NVISO":          "#FF99FF",
	"TPKT":           "#99FF99",
	"TBHSE":          "#FFCCFF",
	"PP.KTTC":        "#CCFFFF",
	"GS.IT":          "#FFCC00",
	"TL.BGĐ_YP":      "#99CC00",
	"PPKV":           "#FF9900",
}

// Categories и Rooms — варианты для выпадающих списков. Поля category и
// location при этом остаются свободным текстом: клиент может прислать
// значение вне списка ("Khác…").
var Categories = []string{"Họp định kỳ", "Họp nội bộ", "Đào tạo", "Phỏng vấn"}

var Rooms = []string{"Phòng họp 1", "Phòng họp 2", "Phòng họp 3", "Phòng Tổng Giám Đốc"}
