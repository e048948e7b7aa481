package tools

import (
	"reflect"

	"github.com/pkg/errors"
	"github.com/xuri/excelize/v2"
)

// ExportToExcel 把结构体切片写入 sheet，第一行为表头
// 表头取字段的 excel tag，"-" 表示跳过，未设置时使用字段名；匿名嵌入的结构体会被展开
func ExportToExcel(f *excelize.File, sheet string, data any) error {
	v := reflect.ValueOf(data)
	if v.Kind() != reflect.Slice {
		return errors.Errorf("export data must be a slice, got %T", data)
	}

	elemType := v.Type().Elem()
	if elemType.Kind() == reflect.Ptr {
		elemType = elemType.Elem()
	}
	if elemType.Kind() != reflect.Struct {
		return errors.Errorf("export data must be a slice of structs, got %T", data)
	}

	if sheet == "" {
		sheet = "Sheet1"
	}
	if _, err := f.NewSheet(sheet); err != nil {
		return errors.WithStack(err)
	}

	type column struct {
		index  []int
		header string
	}

	var columns []column

	var collect func(t reflect.Type, parent []int)
	collect = func(t reflect.Type, parent []int) {
		for i := 0; i < t.NumField(); i++ {
			sf := t.Field(i)
			if !sf.IsExported() {
				continue
			}

			idx := append(append([]int(nil), parent...), i)

			if sf.Anonymous && sf.Type.Kind() == reflect.Struct {
				collect(sf.Type, idx)
				continue
			}

			tag := sf.Tag.Get("excel")
			if tag == "-" {
				continue
			}
			if tag == "" {
				tag = sf.Name
			}
			columns = append(columns, column{index: idx, header: tag})
		}
	}
	collect(elemType, nil)

	for i, col := range columns {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return errors.WithStack(err)
		}
		if err := f.SetCellValue(sheet, cell, col.header); err != nil {
			return errors.WithStack(err)
		}
	}

	row := 2
	for i := 0; i < v.Len(); i++ {
		elem := v.Index(i)
		if elem.Kind() == reflect.Ptr {
			if elem.IsNil() {
				continue
			}
			elem = elem.Elem()
		}

		for colIndex, col := range columns {
			fv := elem.FieldByIndex(col.index)

			var value any
			if fv.Kind() == reflect.Ptr {
				if fv.IsNil() {
					value = ""
				} else {
					value = fv.Elem().Interface()
				}
			} else {
				value = fv.Interface()
			}

			cell, err := excelize.CoordinatesToCellName(colIndex+1, row)
			if err != nil {
				return errors.WithStack(err)
			}
			if err := f.SetCellValue(sheet, cell, value); err != nil {
				return errors.WithStack(err)
			}
		}
		row++
	}

	return nil
}
