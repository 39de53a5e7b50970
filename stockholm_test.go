package xssp

import (
	"strings"
	"testing"
)

func TestReadStockholm(t *testing.T) {
	doc := `# STOCKHOLM 1.0
#=GF ID test-i2
#=GS UniRef100_Q01/1-18 DE First test protein
#=GS UniRef100_Q02/3-20 DE Second test protein

test                VLIMFWYGAPST
UniRef100_Q01/1-18  VLIMFWYGAPST
UniRef100_Q02/3-20  VLIMAAYGAPST
UniRef100_Q03/2-19  VLIMFWYGAPST
#=GC RF             xxxxxxxxxxxx

test                VLIMFW
UniRef100_Q01/1-18  VLIMFW
UniRef100_Q02/3-20  ------
UniRef100_Q03/2-19  VLIMFW
//
`
	msa, err := ReadStockholm(strings.NewReader(doc))
	if err != nil {
		t.Fatal(err)
	}

	// The -i2 iteration marker is stripped from the query name; Q02 is
	// dropped because its identity 10/18 is below the threshold for an
	// aligned length of 18.
	names := []string{"test", "UniRef100_Q01/1-18", "UniRef100_Q03/2-19"}
	if len(msa) != len(names) {
		t.Fatalf("alignment should hold %d sequences, but holds %d",
			len(names), len(msa))
	}
	for i, name := range names {
		if msa[i].Name != name {
			t.Fatalf("sequence %d should be named '%s', but is named '%s'",
				i, name, msa[i].Name)
		}
	}

	if msa.Columns() != 18 {
		t.Fatalf("alignment should be 18 columns wide, but is %d",
			msa.Columns())
	}
	if q := degap(msa.Query().Residues); q != "VLIMFWYGAPSTVLIMFW" {
		t.Fatalf("query should degap to 'VLIMFWYGAPSTVLIMFW', but degaps "+
			"to '%s'", q)
	}
	if msa[1].Identical != 18 || msa[1].AlignedLength != 18 {
		t.Fatalf("Q01 should count 18 identical over 18 aligned columns, "+
			"but counts %d over %d", msa[1].Identical, msa[1].AlignedLength)
	}
}

func TestReadStockholmErrors(t *testing.T) {
	type test struct {
		doc    string
		errstr string
	}
	tests := []test{
		{
			"",
			"not a Stockholm file",
		},
		{
			"# STOCKHOLM 1.0\n",
			"missing #=GF ID",
		},
		{
			"# STOCKHOLM 1.0\n#=GF ID q\nq AAAA\n//\n",
			"insufficient sequences",
		},
		{
			"# STOCKHOLM 1.0\n#=GF ID q\nnospace\n//\n",
			"cannot split line",
		},
		{
			"# STOCKHOLM 1.0\n#=GF ID q\nq AAAA\nh1 AAA\n//\n",
			"block width",
		},
		{
			"# STOCKHOLM 1.0\n#=GF ID q\n" +
				"q AAAA\nh1 AAAA\nh2 AAAA\n\n" +
				"q AAAA\nh2 AAAA\nh1 AAAA\n//\n",
			"expected sequence",
		},
	}
	for _, test := range tests {
		_, err := ReadStockholm(strings.NewReader(test.doc))
		if err == nil {
			t.Fatalf("reading %q should fail with %q, but succeeded",
				test.doc, test.errstr)
		}
		if !strings.Contains(err.Error(), test.errstr) {
			t.Fatalf("reading %q should fail with %q, but failed with %q",
				test.doc, test.errstr, err)
		}
	}
}
