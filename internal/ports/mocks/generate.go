//go:generate mockgen -source=../tariff_repository.go  -destination=./mock_tariff_repository.go  -package=mocks
//go:generate mockgen -source=../tariff_source.go      -destination=./mock_tariff_source.go      -package=mocks
//go:generate mockgen -source=../sheet_writer.go       -destination=./mock_sheet_writer.go       -package=mocks
//go:generate mockgen -source=../snapshot_validator.go -destination=./mock_snapshot_validator.go -package=mocks
//go:generate mockgen -source=../outcome_publisher.go  -destination=./mock_outcome_publisher.go  -package=mocks
//go:generate mockgen -source=../tariff_services.go    -destination=./mock_tariff_services.go    -package=mocks
//go:generate mockgen -source=../logger.go             -destination=./mock_logger.go             -package=mocks

package mocks
