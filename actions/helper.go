package actions

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/ghodss/yaml"
	"github.com/dataops-works/snowload/helper"
	"github.com/dataops-works/snowload/logger"
	"github.com/dataops-works/snowload/pipeline"
)

// PlanDefinition is the document emitted by dry runs and the web plan endpoint.
// It holds the resolved load parameters and every statement a run would execute.
type PlanDefinition struct {
	Bundle     *pipeline.Bundle `json:"bundle" yaml:"bundle"`
	Statements []string         `json:"statements" yaml:"statements"`
}

func getPlanDefinition(b *pipeline.Bundle) (*PlanDefinition, error) {
	stmts, err := pipeline.GetSqlSlicePlan(b)
	if err != nil {
		return nil, err
	}
	return &PlanDefinition{Bundle: b, Statements: stmts}, nil
}

func outputPlanDefinition(log logger.Logger, b *pipeline.Bundle, yamlOrJson string) error {
	p, err := getPlanDefinition(b)
	if err != nil {
		return err
	}
	if yamlOrJson == "yaml" {
		writePlanToFile(log, p, os.Stdout, true)
	} else if yamlOrJson == "json" {
		writePlanToFile(log, p, os.Stdout, false)
	} else {
		return fmt.Errorf("unsupported output format %q", yamlOrJson)
	}
	return nil
}

func writePlanToFile(log logger.Logger, p *PlanDefinition, f io.Writer, useYaml bool) {
	var err error
	var data []byte
	if useYaml {
		data, err = yaml.Marshal(p)
	} else {
		data, err = json.MarshalIndent(p, "", "  ")
	}
	if err != nil {
		log.Panic("unable to marshal the plan: ", err)
	}
	_, err = f.Write(data)
	if err != nil {
		log.Panic(err)
	}
}

var sampleRowHeader = []string{"ID", "Amount", "Profit", "Quantity", "Category", "Sub_Category", "AMOUNT_NUM", "PROFIT_NUM"}

// writeSampleRowsCsv writes the sample rows as CSV, optionally with a header.
// NULL values render as empty cells.
func writeSampleRowsCsv(f io.Writer, rows []pipeline.SampleRow, printHeader bool) error {
	w := csv.NewWriter(f)
	if printHeader {
		if err := w.Write(sampleRowHeader); err != nil {
			return fmt.Errorf("error outputting sample header: %v", err)
		}
	}
	for _, r := range rows {
		cells := helper.InterfaceToString(sampleRowToInterfaceSlice(r))
		if err := w.Write(cells); err != nil {
			return fmt.Errorf("error outputting sample row: %v", err)
		}
	}
	w.Flush()
	return w.Error()
}

func sampleRowToInterfaceSlice(r pipeline.SampleRow) []interface{} {
	retval := make([]interface{}, 0, 8)
	for _, s := range []*string{r.ID, r.Amount, r.Profit, r.Quantity, r.Category, r.SubCategory} {
		if s == nil {
			retval = append(retval, nil)
		} else {
			retval = append(retval, *s)
		}
	}
	for _, f := range []*float64{r.AmountNum, r.ProfitNum} {
		if f == nil {
			retval = append(retval, nil)
		} else {
			retval = append(retval, *f)
		}
	}
	return retval
}

// outputSampleRows writes the sample rows to stdout in the requested format.
func outputSampleRows(log logger.Logger, rows []pipeline.SampleRow, format string, printHeader bool) error {
	switch format {
	case "csv":
		return writeSampleRowsCsv(os.Stdout, rows, printHeader)
	case "json":
		data, err := json.MarshalIndent(rows, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(data))
	case "yaml":
		data, err := yaml.Marshal(rows)
		if err != nil {
			return err
		}
		fmt.Print(string(data))
	default:
		return fmt.Errorf("unsupported output format %q", format)
	}
	return nil
}

func mustExecFn(log logger.Logger, printLogFn func(msg string), execFn func() error) {
	printLogFn("Executing SQL...")
	err := execFn()
	if err != nil {
		log.Panic(err)
	}
	printLogFn("SQL succeeded without error.")
}

func getPrintLogFunc(log logger.Logger, useStdOut bool) func(msg string) {
	return func(msg string) {
		if useStdOut {
			fmt.Println(msg)
		} else {
			log.Info(msg)
		}
	}
}
