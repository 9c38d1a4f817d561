package loader

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"
	"github.com/apache/arrow-go/v18/arrow/memory"
	"github.com/apache/arrow-go/v18/parquet"
	"github.com/apache/arrow-go/v18/parquet/file"
	"github.com/apache/arrow-go/v18/parquet/pqarrow"

	"github.com/KaramelBytes/dataprof-cli/internal/dataset"
)

// LoadParquet reads a parquet file into a Table via Arrow. Cell values are
// rendered to their canonical string form so the engine sees the same
// representation regardless of source format; unsupported logical types
// load as nulls.
func LoadParquet(path string, opt Options) (*dataset.Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open parquet: %w", err)
	}
	defer f.Close()

	pf, err := file.NewParquetReader(f, file.WithReadProps(&parquet.ReaderProperties{}))
	if err != nil {
		return nil, fmt.Errorf("create parquet reader: %w", err)
	}
	defer pf.Close()

	mem := memory.NewGoAllocator()
	ar, err := pqarrow.NewFileReader(pf, pqarrow.ArrowReadProperties{}, mem)
	if err != nil {
		return nil, fmt.Errorf("create arrow reader: %w", err)
	}
	tbl, err := ar.ReadTable(context.Background())
	if err != nil {
		return nil, fmt.Errorf("read parquet data: %w", err)
	}
	defer tbl.Release()

	nulls := nullSet(opt)
	rows := int(tbl.NumRows())
	if opt.MaxRows > 0 && opt.MaxRows < rows {
		rows = opt.MaxRows
	}

	cols := make([]dataset.Column, tbl.NumCols())
	for i := 0; i < int(tbl.NumCols()); i++ {
		col := tbl.Column(i)
		out := dataset.Column{
			Name:   tbl.Schema().Field(i).Name,
			Values: make([]dataset.Value, 0, rows),
		}
		for _, chunk := range col.Data().Chunks() {
			for pos := 0; pos < chunk.Len() && len(out.Values) < rows; pos++ {
				if chunk.IsNull(pos) {
					out.Values = append(out.Values, dataset.Null())
					continue
				}
				s, ok := arrowValueString(chunk, pos)
				if !ok {
					out.Values = append(out.Values, dataset.Null())
					continue
				}
				out.Values = append(out.Values, cellValue(s, nulls))
			}
		}
		// normalize in case of truncation mid-chunk
		for len(out.Values) < rows {
			out.Values = append(out.Values, dataset.Null())
		}
		cols[i] = out
	}
	return &dataset.Table{Columns: cols}, nil
}

// arrowValueString renders one non-null arrow cell as a string.
func arrowValueString(arr arrow.Array, pos int) (string, bool) {
	switch arr.DataType().ID() {
	case arrow.STRING:
		return arr.(*array.String).Value(pos), true
	case arrow.LARGE_STRING:
		return arr.(*array.LargeString).Value(pos), true
	case arrow.BOOL:
		return strconv.FormatBool(arr.(*array.Boolean).Value(pos)), true
	case arrow.INT8:
		return strconv.FormatInt(int64(arr.(*array.Int8).Value(pos)), 10), true
	case arrow.INT16:
		return strconv.FormatInt(int64(arr.(*array.Int16).Value(pos)), 10), true
	case arrow.INT32:
		return strconv.FormatInt(int64(arr.(*array.Int32).Value(pos)), 10), true
	case arrow.INT64:
		return strconv.FormatInt(arr.(*array.Int64).Value(pos), 10), true
	case arrow.UINT8:
		return strconv.FormatUint(uint64(arr.(*array.Uint8).Value(pos)), 10), true
	case arrow.UINT16:
		return strconv.FormatUint(uint64(arr.(*array.Uint16).Value(pos)), 10), true
	case arrow.UINT32:
		return strconv.FormatUint(uint64(arr.(*array.Uint32).Value(pos)), 10), true
	case arrow.UINT64:
		return strconv.FormatUint(arr.(*array.Uint64).Value(pos), 10), true
	case arrow.FLOAT32:
		return strconv.FormatFloat(float64(arr.(*array.Float32).Value(pos)), 'g', -1, 32), true
	case arrow.FLOAT64:
		return strconv.FormatFloat(arr.(*array.Float64).Value(pos), 'g', -1, 64), true
	case arrow.DATE32:
		return arr.(*array.Date32).Value(pos).ToTime().Format("2006-01-02"), true
	case arrow.DATE64:
		return arr.(*array.Date64).Value(pos).ToTime().Format("2006-01-02"), true
	case arrow.TIMESTAMP:
		unit := arr.DataType().(*arrow.TimestampType).Unit
		return arr.(*array.Timestamp).Value(pos).ToTime(unit).UTC().Format(time.RFC3339), true
	default:
		return "", false
	}
}
