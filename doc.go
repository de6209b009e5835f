// Package lvpca computes principal component analysis over tabular numeric
// data, from CSV ingestion to projected scores.
//
// What is inside?
//
//	matrix/           dense row-major Matrix, validators, centering, XᵀX, Jacobi eigen
//	pca/              Center, Covariance, Decompose, Rank, Reorder, Project, Fit
//	dataset/          CSV decode/encode with located parse errors, seeded random data
//	internal/config/  YAML run configuration mapped onto pca options
//	cmd/lvpca/        `lvpca run` and `lvpca generate`
//
// Guarantees:
//
//   - Deterministic: equal inputs and options give bit-identical outputs,
//     whatever the worker count.
//   - Pure stages: no stage mutates its arguments.
//   - Errors are sentinels wrapped with an operation tag; match with errors.Is.
//
// Quick example:
//
//	X, _ := dataset.ReadCSV("data.csv")
//	res, err := pca.Fit(X, pca.WithSolver(pca.SolverGonum))
//	if err != nil { ... }
//	_ = dataset.WriteCSV(os.Stdout, res.Projected, dataset.ComponentHeader(res.Projected.Cols()))
//
//	go install github.com/katalvlaran/lvpca/cmd/lvpca@latest
package lvpca
